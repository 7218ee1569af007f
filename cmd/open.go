package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/pkg/ui"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Open a file in the browser or default application",
	Long: `Open an uploaded file outside the terminal.

Images, video and audio open directly. Other files are downloads,
so you are asked to confirm first.

Examples:
  updeck open
  updeck open cat.png
  updeck open "quarterly report"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	record, err := pickRecord(ctx, args)
	if errors.Is(err, errPickCancelled) {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}
	if err != nil || record == nil {
		return err
	}

	view := newListView(printNotifier)
	opened, err := view.OpenRecord(ctx, *record, stdinConfirmer)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to open: " + err.Error()))
		fmt.Println(ui.FormatInfo("You can open it manually: " + view.AssetURL(*record)))
		return err
	}
	if !opened {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}

	appLogger.Info().Str("file", record.StoredName()).Msg("opened")
	fmt.Println(ui.FormatSuccess("Opened: " + record.Name))
	return nil
}
