package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/pkg/ui"
)

var copyPrint bool

// copyCmd represents the copy command
var copyCmd = &cobra.Command{
	Use:     "copy [query]",
	Aliases: []string{"cp", "link"},
	Short:   "Copy a file's public link to the clipboard",
	Long: `Copy the public link of an uploaded file to the clipboard.

Examples:
  updeck copy
  updeck copy cat.png
  updeck copy report --print`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVarP(&copyPrint, "print", "p", false, "Also print the link")
}

func runCopy(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	record, err := pickRecord(ctx, args)
	if errors.Is(err, errPickCancelled) {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}
	if err != nil || record == nil {
		return err
	}

	// CopyLink reports the outcome through the notifier
	view := newListView(printNotifier)
	if err := view.CopyLink(*record); err != nil {
		appLogger.Error().Err(err).Str("file", record.StoredName()).Msg("copy failed")
		fmt.Println(ui.FormatInfo("Link: " + view.AssetURL(*record)))
		return err
	}

	if copyPrint {
		fmt.Println(view.AssetURL(*record))
	}
	return nil
}
