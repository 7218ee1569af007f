package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

// GetPreferredEditor returns the editor command from the environment, or vi
func GetPreferredEditor() string {
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// runEditor opens path in the user's editor and waits for it to exit
func runEditor(path string) error {
	c := exec.Command(GetPreferredEditor(), path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// noticeStyle maps a notice level to its status line style
func noticeStyle(level domain.NoticeLevel) lipgloss.Style {
	switch level {
	case domain.NoticeSuccess:
		return ui.StyleSuccess
	case domain.NoticeWarning:
		return ui.StyleWarning
	case domain.NoticeError:
		return ui.StyleError
	default:
		return ui.StyleInfo
	}
}

// formatNotice renders a notice for plain terminal output
func formatNotice(n domain.Notice) string {
	switch n.Level {
	case domain.NoticeSuccess:
		return ui.FormatSuccess(n.Message)
	case domain.NoticeWarning:
		return ui.FormatWarning(n.Message)
	case domain.NoticeError:
		return ui.FormatError(n.Message)
	default:
		return ui.FormatInfo(n.Message)
	}
}

// printNotifier writes notices straight to stdout
var printNotifier = ports.NotifierFunc(func(n domain.Notice) {
	fmt.Println(formatNotice(n))
})

// promptYesNo asks message on out and reads one answer from in.
// Anything but y/yes counts as no.
func promptYesNo(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprint(out, ui.StyleWarning.Render(message+" (y/n): "))

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// stdinConfirmer asks on the terminal
var stdinConfirmer = ports.ConfirmerFunc(func(message string) bool {
	return promptYesNo(os.Stdin, os.Stdout, message)
})

// highlightSource applies syntax highlighting picked from the file name
func highlightSource(filename, content string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.TTY16m

	var buf strings.Builder
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	err = formatter.Format(&buf, style, iterator)
	if err != nil {
		return content
	}

	return buf.String()
}

// formatRelativeTime renders t relative to now in days, weeks, months or years
func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	// compare calendar days, not 24h spans
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	local := t.In(now.Location())
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())

	days := int(today.Sub(day).Hours() / 24)

	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1d ago"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days < 14:
		return "1w ago"
	case days < 30:
		return fmt.Sprintf("%dw ago", days/7)
	case days < 60:
		return "1mo ago"
	case days < 365:
		return fmt.Sprintf("%dmo ago", days/30)
	case days < 730:
		return "1y ago"
	default:
		return fmt.Sprintf("%dy ago", days/365)
	}
}

func padRight(s string, width int) string {
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

// shortenHome replaces the home directory prefix with ~
func shortenHome(path string) string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return strings.Replace(path, home, "~", 1)
	}
	return path
}
