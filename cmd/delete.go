package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete [query]",
	Aliases: []string{"rm"},
	Short:   "Delete a file from the server",
	Long: `Delete an uploaded file from the server.

You are asked to confirm unless --yes is given.

Examples:
  updeck delete
  updeck delete old-backup.zip
  updeck rm draft --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	record, err := pickRecord(ctx, args)
	if errors.Is(err, errPickCancelled) {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}
	if err != nil || record == nil {
		return err
	}

	fmt.Printf("%s %s %s\n",
		ui.StyleWarning.Render(ui.IconWarning),
		ui.StyleBold.Render(record.Name),
		ui.StyleMuted.Render("("+domain.FormatBytes(record.Size)+")"))

	if !deleteYes && !promptYesNo(os.Stdin, os.Stdout, domain.MsgConfirmDelete) {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}

	// Delete prints exactly one notice, success or failure
	view := newListView(printNotifier)
	if err := view.Delete(ctx, *record); err != nil {
		appLogger.Error().Err(err).Str("file", record.StoredName()).Msg("delete failed")
		return err
	}

	appLogger.Info().Str("file", record.StoredName()).Msg("deleted")
	return nil
}
