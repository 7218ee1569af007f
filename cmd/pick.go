package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/services"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

// errPickCancelled is returned when the user leaves the picker without a choice
var errPickCancelled = errors.New("selection cancelled")

// pickRecord resolves the file a command acts on. Without a query every file
// is offered in the fuzzy finder; with a query the best matches are listed
// and the user picks one by number.
func pickRecord(ctx context.Context, args []string) (*domain.FileRecord, error) {
	query := ""
	if len(args) > 0 {
		query = strings.TrimSpace(args[0])
	}

	resp, err := listService.Search(ctx, services.SearchRequest{Query: query})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load files"))
		return nil, err
	}

	if resp.Total == 0 {
		if query != "" {
			fmt.Println(ui.FormatWarning("No files found matching: " + query))
		} else {
			fmt.Println(ui.FormatWarning("No files found"))
		}
		return nil, nil
	}

	if resp.Total == 1 {
		return &resp.Files[0], nil
	}

	if query == "" {
		idx, err := fuzzyfinder.Find(
			resp.Files,
			func(i int) string {
				return resp.Files[i].Name
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				return describeRecord(resp.Files[i])
			}),
		)
		if err != nil {
			// Ctrl+C or ESC
			return nil, errPickCancelled
		}
		return &resp.Files[idx], nil
	}

	fmt.Println(ui.FormatInfo(fmt.Sprintf("Found %d matches:", resp.Total)))
	fmt.Println()
	printChoices(os.Stdout, resp.Files)
	fmt.Println()

	idx, err := readChoice(os.Stdin, os.Stdout, len(resp.Files))
	if err != nil {
		return nil, err
	}
	fmt.Println()
	return &resp.Files[idx], nil
}

// describeRecord is the fuzzy finder preview text
func describeRecord(r domain.FileRecord) string {
	preview := fmt.Sprintf("Name: %s\nID: %s\nSize: %s\nType: %s",
		r.Name,
		r.ID,
		domain.FormatBytes(r.Size),
		domain.Classify(r.Name))
	if r.Filename != "" && r.Filename != r.Name {
		preview += fmt.Sprintf("\nStored as: %s", r.Filename)
	}
	if r.Date != "" {
		preview += fmt.Sprintf("\nDate: %s (%s)",
			r.GetDisplayDate(appConfig.DisplayDateFormat),
			formatRelativeTime(r.ModifiedAt(), time.Now()))
	}
	return preview
}

func printChoices(out io.Writer, records []domain.FileRecord) {
	width := 0
	for _, r := range records {
		width = max(width, lipgloss.Width(r.Name))
	}
	for i, r := range records {
		fmt.Fprintf(out, "%s %2d. %s %s\n",
			ui.StyleAccent.Render(ui.CategoryIcon(domain.Classify(r.Name).String())),
			i+1,
			padRight(ui.StyleBold.Render(r.Name), width),
			ui.StyleMuted.Render("("+domain.FormatBytes(r.Size)+")"))
	}
}

// readChoice prompts until a number in [1, n] is entered and returns it zero-based.
// End of input cancels.
func readChoice(in io.Reader, out io.Writer, n int) (int, error) {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, ui.StyleInfo.Render("Select a file (1-"+strconv.Itoa(n)+"): "))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, errPickCancelled
		}

		selection, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(out, ui.FormatWarning("Invalid input. Please enter a number."))
			continue
		}
		if selection < 1 || selection > n {
			fmt.Fprintln(out, ui.FormatWarning(fmt.Sprintf("Please enter a number between 1 and %d.", n)))
			continue
		}
		return selection - 1, nil
	}
}
