package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/services"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

var (
	listQuery   string
	listSortBy  string
	listReverse bool
	listLimit   int
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the files on the server",
	Aliases: []string{"ls"},
	Long: `List the uploaded files in a table.

Examples:
  updeck list
  updeck list --query report
  updeck list --sort size --reverse
  updeck ls --sort date --limit 20`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only show files whose name contains this text")
	// Sort defaults to the config value, applied in runList
	listCmd.Flags().StringVar(&listSortBy, "sort", "", "Sort by column (id, name, size, date)")
	listCmd.Flags().BoolVar(&listReverse, "reverse", false, "Reverse the column's default order")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many files")
}

func runList(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("sort") {
		listSortBy = appConfig.DefaultSort
	}
	if !cmd.Flags().Changed("reverse") {
		listReverse = appConfig.ReverseSort
	}

	req := services.ListRequest{
		Query:   listQuery,
		Reverse: listReverse,
		Limit:   listLimit,
	}
	if listSortBy != "" {
		field, err := domain.ParseSortField(listSortBy)
		if err != nil {
			return err
		}
		req.SortBy = field
	}

	ctx := getContext()
	resp, err := listService.Execute(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list files"))
		return err
	}

	if resp.Total == 0 {
		if listQuery != "" {
			fmt.Println(ui.FormatWarning("No files found matching: " + listQuery))
		} else {
			fmt.Println(ui.FormatWarning("No files found"))
		}
		return nil
	}

	if listQuery != "" {
		fmt.Println(ui.FormatTitle(fmt.Sprintf("Files (matching: %s)", listQuery)))
	} else {
		fmt.Println(ui.FormatTitle("Files"))
	}
	fmt.Println()

	table := ui.NewTable(
		ui.TableColumn{Header: "ID", Width: 15},
		ui.TableColumn{Header: "Name", Width: 24, Flex: true},
		ui.TableColumn{Header: "Size", Width: 10, Align: ui.AlignRight},
		ui.TableColumn{Header: "Date", Width: 16},
	)
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		table.MaxWidth = w
	}

	for _, f := range resp.Files {
		table.AddRow(
			domain.TruncateID(f.ID),
			f.Name,
			domain.FormatBytes(f.Size),
			f.GetDisplayDate(appConfig.DisplayDateFormat),
		)
	}

	fmt.Print(table.Render())
	fmt.Println()

	summary := fmt.Sprintf("Total: %d files, %s", resp.Total, domain.FormatBytes(resp.TotalSize))
	if len(resp.Files) < resp.Total {
		summary = fmt.Sprintf("Showing %d of %d files, %s total", len(resp.Files), resp.Total, domain.FormatBytes(resp.TotalSize))
	}
	fmt.Println(ui.FormatMuted(summary))

	return nil
}
