package cmd

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

// messageTTL is how long a status message stays in the footer
const messageTTL = 3 * time.Second

// Messages shared by the catalog and browse programs

type statusMsg struct {
	message string
	style   lipgloss.Style
}

type clearMessageMsg struct{}

type filesLoadedMsg struct {
	records []domain.FileRecord
	err     error
}

// loadFiles fetches the collection off the event loop
func loadFiles(ctx context.Context, client ports.FileClient) tea.Cmd {
	return func() tea.Msg {
		records, err := client.List(ctx)
		return filesLoadedMsg{records: records, err: err}
	}
}

// clearMessageAfter schedules the footer message to expire
func clearMessageAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// noticeStatus turns a domain notice into a footer message
func noticeStatus(n domain.Notice) statusMsg {
	return statusMsg{message: n.Message, style: noticeStyle(n.Level)}
}

// openExternal opens target outside the terminal and reports the outcome
func openExternal(ctx context.Context, opener ports.URLOpener, target, name string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(ctx, target); err != nil {
			return statusMsg{message: "Failed to open: " + err.Error(), style: ui.StyleError}
		}
		return statusMsg{message: "Opened " + name, style: ui.StyleSuccess}
	}
}

// renderLoadError is the banner shown instead of an empty view when the fetch failed
func renderLoadError(err error, width int) string {
	msg := strings.TrimPrefix(err.Error(), "failed to load files: ")
	banner := ui.FormatBanner("Could not load files: " + msg)
	hint := ui.StyleMuted.Render("Press r to retry, q to quit")
	return lipgloss.Place(width, 5, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, banner, hint))
}

// renderTitleBar lays out a title on the left and stats on the right
func renderTitleBar(title, stats string, width int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Padding(0, 1)

	left := titleStyle.Render(title)
	right := statsStyle.Render(stats)

	spacer := width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", spacer), right)
}

// renderSearchBox draws the search input, highlighted while focused
func renderSearchBox(input string, focused bool, empty bool, width int) string {
	borderColor := ui.ColorMuted
	prompt := ui.StyleMuted.Render("🔍 ")
	if focused {
		borderColor = ui.ColorPrimary
		prompt = ui.StylePrimary.Render("🔍 ")
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(width-4, 10))

	content := prompt + input
	if !focused && empty {
		content = prompt + ui.StyleMuted.Render("Press / to search...")
	}
	return style.Render(content)
}

// renderStatusLine shows the current message until it expires
func renderStatusLine(message string, style lipgloss.Style, expiry time.Time, fallback string) string {
	if message != "" && time.Now().Before(expiry) {
		return style.Render(message)
	}
	return ui.StyleMuted.Render(fallback)
}

// renderModal centers box on a width x height screen
func renderModal(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
