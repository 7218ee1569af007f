package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align is the horizontal alignment of a column's cells
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// columnGap separates adjacent columns
const columnGap = "  "

// TableColumn describes one column of a Table
type TableColumn struct {
	Header string
	Width  int // minimum width
	Align  Align
	// Flex columns give up width when the table exceeds MaxWidth; their
	// cells are truncated to fit.
	Flex bool
}

// Table renders rows of plain cells as aligned text for one-shot commands
type Table struct {
	Columns  []TableColumn
	Rows     [][]string
	MaxWidth int // 0 means unbounded
}

// NewTable creates a table with the given columns
func NewTable(columns ...TableColumn) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row. Missing cells render empty, extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Widths returns the rendered width of every column
func (t *Table) Widths() []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Header))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	if t.MaxWidth <= 0 {
		return widths
	}

	over := sum(widths) + len(columnGap)*(len(widths)-1) - t.MaxWidth
	for i, col := range t.Columns {
		if over <= 0 {
			break
		}
		if !col.Flex {
			continue
		}
		floor := max(lipgloss.Width(col.Header), 3)
		give := min(over, widths[i]-floor)
		if give > 0 {
			widths[i] -= give
			over -= give
		}
	}
	return widths
}

// Render returns the header, a rule and every row, one per line
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := t.Widths()
	var b strings.Builder

	header := make([]string, len(t.Columns))
	rule := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = padString(Truncate(col.Header, widths[i]), widths[i], col.Align)
		rule[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(header, columnGap)))
	b.WriteString("\n")
	b.WriteString(StyleTableRule.Render(strings.Join(rule, columnGap)))
	b.WriteString("\n")

	for n, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = padString(Truncate(row[i], widths[i]), widths[i], col.Align)
		}

		style := StyleTableRow
		if n%2 == 1 {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(strings.Join(cells, columnGap)))
		b.WriteString("\n")
	}

	return b.String()
}

// padString pads s to width display cells
func padString(s string, width int, align Align) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}

	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// Truncate shortens s to at most width display cells, ending with "…"
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", StyleAccent.Render(key), value)
}
