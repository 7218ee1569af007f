package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports"
	"github.com/kamal-hamza/updeck/internal/core/services"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"table"},
	Short:   "Browse files in a sortable table (alias: table)",
	Long: `Launch a full-screen table of files with sorting, search and selection.

Rows are revealed one page at a time as you scroll towards the bottom.

Keyboard Shortcuts:
  Navigation:
    ↑/k ↓/j      Move
    PgUp/PgDn    Page
    g / G        Top / bottom

  Sorting:
    1 2 3 4      Sort by ID, name, size, date (press again to reverse)

  Actions:
    Space        Select / deselect the row
    a            Select / deselect all visible rows
    Enter / o    Open the file (downloads ask first)
    c            Copy the file's link
    d            Delete the file (asks first)
    r            Reload from the server

  General:
    /            Search by name
    Esc          Clear search / cancel
    ?            Show help
    q            Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	m := newBrowseModel(ctx, fileClient, clipboardAdapter, openerAdapter, browseOptions{
		PageSize:        appConfig.PageSize,
		ScrollThreshold: appConfig.ScrollThresholdRows,
		DateFormat:      appConfig.DisplayDateFormat,
		DefaultSort:     appConfig.DefaultSort,
		Reverse:         appConfig.ReverseSort,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

type browseMode int

const (
	browseModeTable browseMode = iota
	browseModeSearch
	browseModeConfirmDelete
	browseModeConfirmDownload
	browseModeHelp
)

// browseChrome is the rows taken by header, search bar and footer
const browseChrome = 10

// browseOptions configures the table program
type browseOptions struct {
	PageSize        int
	ScrollThreshold int // rows
	DateFormat      string
	DefaultSort     string
	Reverse         bool
}

type browseKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	SortID    key.Binding
	SortName  key.Binding
	SortSize  key.Binding
	SortDate  key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Open      key.Binding
	Copy      key.Binding
	Delete    key.Binding
	Reload    key.Binding
	Search    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Open, k.Copy, k.Delete, k.Search, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SortID, k.SortName, k.SortSize, k.SortDate},
		{k.Select, k.SelectAll, k.Open, k.Copy, k.Delete, k.Reload},
		{k.Search, k.Escape, k.Help, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	SortID: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "sort id"),
	),
	SortName: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "sort name"),
	),
	SortSize: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "sort size"),
	),
	SortDate: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "sort date"),
	),
	Select: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter/o", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy link"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// tableKeys drops the table's space and d/u bindings, which the browser uses
func tableKeys() table.KeyMap {
	km := table.DefaultKeyMap()
	km.PageDown = key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down"))
	km.PageUp = key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down"))
	km.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ page up"))
	return km
}

// noticeQueue buffers notices raised by view actions until Update drains them
type noticeQueue struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (q *noticeQueue) Notify(n domain.Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notices = append(q.notices, n)
}

func (q *noticeQueue) Drain() []domain.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.notices
	q.notices = nil
	return drained
}

// noticesMsg tells Update to show whatever the view reported
type noticesMsg struct{}

type deleteDoneMsg struct {
	filename string
	err      error
}

type browseModel struct {
	ctx        context.Context
	view       *services.ListView
	client     ports.FileClient
	notices    *noticeQueue
	dateFormat string

	table          table.Model
	mode           browseMode
	searchInput    textinput.Model
	help           help.Model
	keys           browseKeyMap
	width          int
	height         int
	ready          bool
	message        string
	messageStyle   lipgloss.Style
	messageExpiry  time.Time
	deleteTarget   *domain.FileRecord
	downloadTarget *domain.FileRecord
	pending        int // deletes in flight
}

func newBrowseModel(ctx context.Context, client ports.FileClient, clipboard ports.Clipboard, opener ports.URLOpener, opts browseOptions) browseModel {
	notices := &noticeQueue{}
	view := services.NewListView(client, clipboard, opener, notices, services.ListViewConfig{
		PageSize:        opts.PageSize,
		ScrollThreshold: opts.ScrollThreshold,
	})

	if field, err := domain.ParseSortField(opts.DefaultSort); err == nil {
		spec := domain.SortSpec{Field: field, Direction: domain.DefaultDirection(field)}
		if opts.Reverse {
			spec = domain.Toggle(&spec, field)
		}
		view.SetSort(spec)
	}

	ti := textinput.New()
	ti.Placeholder = "Search files..."
	ti.CharLimit = 100
	ti.Width = 50

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		BorderBottom(true).
		Foreground(ui.ColorPrimary).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(ui.ColorAccent).
		Bold(true)

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(styles),
	)
	t.KeyMap = tableKeys()

	m := browseModel{
		ctx:         ctx,
		view:        view,
		client:      client,
		notices:     notices,
		dateFormat:  opts.DateFormat,
		table:       t,
		mode:        browseModeTable,
		searchInput: ti,
		help:        help.New(),
		keys:        browseKeys,
	}
	if m.dateFormat == "" {
		m.dateFormat = "2006-01-02 15:04"
	}
	m.refreshColumns()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return loadFiles(m.ctx, m.client)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.table.SetHeight(max(msg.Height-browseChrome, 3))
		m.table.SetWidth(msg.Width)
		m.refreshColumns()
		return m, nil

	case filesLoadedMsg:
		m.view.ApplyLoad(msg.records, msg.err)
		m.refreshRows()
		return m, nil

	case deleteDoneMsg:
		m.pending--
		m.view.ApplyDelete(msg.filename, msg.err)
		m.refreshRows()
		return m, m.flushNotices()

	case noticesMsg:
		return m, m.flushNotices()

	case statusMsg:
		return m, m.setStatus(msg)

	case clearMessageMsg:
		if time.Now().After(m.messageExpiry) {
			m.message = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case browseModeSearch:
			return m.updateSearch(msg)
		case browseModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case browseModeConfirmDownload:
			return m.updateConfirmDownload(msg)
		case browseModeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateTable(msg)
		}
	}

	return m, nil
}

func (m browseModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SortID):
		m.toggleSort(domain.SortByID)
	case key.Matches(msg, m.keys.SortName):
		m.toggleSort(domain.SortByName)
	case key.Matches(msg, m.keys.SortSize):
		m.toggleSort(domain.SortBySize)
	case key.Matches(msg, m.keys.SortDate):
		m.toggleSort(domain.SortByDate)

	case key.Matches(msg, m.keys.Select):
		if rec, ok := m.current(); ok {
			m.view.ToggleSelected(rec.ID)
			m.refreshRows()
		}

	case key.Matches(msg, m.keys.SelectAll):
		m.view.ToggleSelectAll()
		m.refreshRows()

	case key.Matches(msg, m.keys.Open):
		if rec, ok := m.current(); ok {
			if !domain.IsPreviewable(rec.StoredName()) {
				m.downloadTarget = &rec
				m.mode = browseModeConfirmDownload
				return m, nil
			}
			return m, openRecord(m.ctx, m.view, rec, nil)
		}

	case key.Matches(msg, m.keys.Copy):
		if rec, ok := m.current(); ok {
			return m, copyLink(m.view, rec)
		}

	case key.Matches(msg, m.keys.Delete):
		if rec, ok := m.current(); ok {
			m.deleteTarget = &rec
			m.mode = browseModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Reload):
		return m, loadFiles(m.ctx, m.client)

	case key.Matches(msg, m.keys.Search):
		m.mode = browseModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = browseModeHelp

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		m.checkScroll()
		return m, cmd
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = browseModeTable
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.view.SetQuery("")
		m.refreshRows()
		m.table.GotoTop()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = browseModeTable
		m.searchInput.Blur()
		return m, nil

	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown, msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		m.checkScroll()
		return m, cmd

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != m.view.Query() {
			// a new query starts again from the first page
			m.view.SetQuery(m.searchInput.Value())
			m.refreshRows()
			m.table.GotoTop()
		}
		return m, cmd
	}
}

func (m browseModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		rec := m.deleteTarget
		m.deleteTarget = nil
		m.mode = browseModeTable
		if rec == nil {
			return m, nil
		}
		m.pending++
		return m, removeFile(m.ctx, m.view, rec.StoredName())

	case key.Matches(msg, m.keys.Cancel):
		m.deleteTarget = nil
		m.mode = browseModeTable
	}
	return m, nil
}

func (m browseModel) updateConfirmDownload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		rec := m.downloadTarget
		m.downloadTarget = nil
		m.mode = browseModeTable
		if rec == nil {
			return m, nil
		}
		// the modal already asked
		accepted := ports.ConfirmerFunc(func(string) bool { return true })
		return m, openRecord(m.ctx, m.view, *rec, accepted)

	case key.Matches(msg, m.keys.Cancel):
		m.downloadTarget = nil
		m.mode = browseModeTable
	}
	return m, nil
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = browseModeTable
	}
	return m, nil
}

func (m browseModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != browseModeTable && m.mode != browseModeSearch {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.table.MoveUp(1)
	case tea.MouseButtonWheelDown:
		m.table.MoveDown(1)
		m.checkScroll()
	}
	return m, nil
}

// checkScroll reveals the next page once the cursor is within the
// threshold of the last loaded row
func (m *browseModel) checkScroll() {
	metrics := domain.ScrollMetrics{
		Offset:   m.table.Cursor(),
		Viewport: 1,
		Content:  len(m.view.Visible()),
	}
	if m.view.OnScroll(metrics) {
		m.refreshRows()
	}
}

func (m *browseModel) toggleSort(field domain.SortField) {
	m.view.ToggleSort(field)
	m.refreshColumns()
	m.refreshRows()
}

// current returns the record under the cursor
func (m browseModel) current() (domain.FileRecord, bool) {
	visible := m.view.Visible()
	c := m.table.Cursor()
	if c < 0 || c >= len(visible) {
		return domain.FileRecord{}, false
	}
	return visible[c], true
}

func (m *browseModel) setStatus(msg statusMsg) tea.Cmd {
	m.message = msg.message
	m.messageStyle = msg.style
	m.messageExpiry = time.Now().Add(messageTTL)
	return clearMessageAfter(messageTTL)
}

// flushNotices shows the latest notice raised by the view
func (m *browseModel) flushNotices() tea.Cmd {
	notices := m.notices.Drain()
	if len(notices) == 0 {
		return nil
	}
	return m.setStatus(noticeStatus(notices[len(notices)-1]))
}

// Table contents

const (
	colCheckWidth = 3
	colIDWidth    = 16
	colSizeWidth  = 11
	colDateWidth  = 18
)

func (m browseModel) nameWidth() int {
	// each column carries one cell of padding on both sides
	fixed := colCheckWidth + colIDWidth + colSizeWidth + colDateWidth + 5*2
	return max(m.width-fixed-2, 16)
}

func (m *browseModel) refreshColumns() {
	title := func(n int, label string, field domain.SortField) string {
		t := strconv.Itoa(n) + " " + label
		if ind := m.view.SortIndicator(field); ind != "" {
			t += " " + ind
		}
		return t
	}

	m.table.SetColumns([]table.Column{
		{Title: ui.IconUncheck, Width: colCheckWidth},
		{Title: title(1, "ID", domain.SortByID), Width: colIDWidth},
		{Title: title(2, "Name", domain.SortByName), Width: m.nameWidth()},
		{Title: title(3, "Size", domain.SortBySize), Width: colSizeWidth},
		{Title: title(4, "Date", domain.SortByDate), Width: colDateWidth},
	})
}

func (m *browseModel) refreshRows() {
	visible := m.view.Visible()
	rows := make([]table.Row, len(visible))
	for i, r := range visible {
		check := ui.IconUncheck
		if m.view.IsSelected(r.ID) {
			check = ui.IconCheck
		}
		rows[i] = table.Row{
			check,
			domain.TruncateID(r.ID),
			r.Name,
			domain.FormatBytes(r.Size),
			r.GetDisplayDate(m.dateFormat),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}

	// header checkbox mirrors select-all
	cols := m.table.Columns()
	if len(cols) > 0 {
		cols[0].Title = ui.IconUncheck
		if m.view.AllVisibleSelected() {
			cols[0].Title = ui.IconCheck
		}
		m.table.SetColumns(cols)
	}
}

// Commands

func openRecord(ctx context.Context, view *services.ListView, rec domain.FileRecord, confirmer ports.Confirmer) tea.Cmd {
	return func() tea.Msg {
		opened, err := view.OpenRecord(ctx, rec, confirmer)
		if err != nil {
			return statusMsg{message: "Failed to open: " + err.Error(), style: ui.StyleError}
		}
		if !opened {
			return statusMsg{message: "Download cancelled", style: ui.StyleMuted}
		}
		return statusMsg{message: "Opened " + rec.Name, style: ui.StyleSuccess}
	}
}

func copyLink(view *services.ListView, rec domain.FileRecord) tea.Cmd {
	return func() tea.Msg {
		// the outcome arrives as a notice
		_ = view.CopyLink(rec)
		return noticesMsg{}
	}
}

func removeFile(ctx context.Context, view *services.ListView, filename string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{filename: filename, err: view.RemoveRemote(ctx, filename)}
	}
}

// Rendering

func (m browseModel) View() string {
	if !m.ready {
		return "\n  Loading files..."
	}

	switch m.mode {
	case browseModeHelp:
		return m.viewHelp()
	case browseModeConfirmDelete:
		return m.viewConfirmDelete()
	case browseModeConfirmDownload:
		return m.viewConfirmDownload()
	default:
		return m.viewTable()
	}
}

func (m browseModel) viewTable() string {
	var body string
	switch {
	case !m.view.Loaded():
		body = lipgloss.Place(m.width, 5, lipgloss.Center, lipgloss.Center,
			ui.StyleMuted.Render("Loading files..."))
	case m.view.LoadErr() != nil:
		body = renderLoadError(m.view.LoadErr(), m.width)
	case len(m.view.Filtered()) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(2, 4)
		if m.view.Query() != "" {
			body = emptyStyle.Render("No files match your search.")
		} else {
			body = emptyStyle.Render("No files on the server yet.")
		}
	default:
		body = m.table.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		renderSearchBox(m.searchInput.View(), m.mode == browseModeSearch, m.searchInput.Value() == "", m.width),
		body,
		m.renderFooter(),
	)
}

func (m browseModel) renderHeader() string {
	stats := fmt.Sprintf("%d files", len(m.view.Records()))
	if n := m.view.SelectedCount(); n > 0 {
		stats = fmt.Sprintf("%d selected  %s", n, stats)
	}
	return renderTitleBar("📋 Files", stats, m.width)
}

func (m browseModel) renderFooter() string {
	var parts []string
	filtered := len(m.view.Filtered())
	visible := len(m.view.Visible())
	if filtered > 0 {
		parts = append(parts, fmt.Sprintf("Showing %d of %d", visible, filtered))
	}
	if m.view.HasMore() {
		parts = append(parts, "scroll for more")
	}
	if s := m.view.Sort(); s != nil {
		parts = append(parts, fmt.Sprintf("sorted by %s %s", s.Field, s.Indicator(s.Field)))
	}
	if m.pending > 0 {
		parts = append(parts, fmt.Sprintf("deleting %d...", m.pending))
	}

	fallback := "Ready"
	if len(parts) > 0 {
		fallback = strings.Join(parts, " · ")
	}

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	return footerStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		renderStatusLine(m.message, m.messageStyle, m.messageExpiry, fallback),
		m.help.View(m.keys),
	))
}

func (m browseModel) confirmBox(title, name, detail string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(60).
		Align(lipgloss.Center)

	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorWarning).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true)

	promptStyle := lipgloss.NewStyle().
		Foreground(ui.ColorDefault).
		MarginTop(1)

	content := fmt.Sprintf("%s\n\n%s\n%s\n\n%s",
		titleStyle.Render(ui.IconWarning+"  "+title),
		nameStyle.Render(name),
		ui.StyleMuted.Render(detail),
		promptStyle.Render("Press 'y' to confirm, 'n' or ESC to cancel"),
	)

	return renderModal(m.width, m.height, boxStyle.Render(content))
}

func (m browseModel) viewConfirmDelete() string {
	if m.deleteTarget == nil {
		return ""
	}
	return m.confirmBox(domain.MsgConfirmDelete, m.deleteTarget.Name, m.deleteTarget.StoredName())
}

func (m browseModel) viewConfirmDownload() string {
	if m.downloadTarget == nil {
		return ""
	}
	return m.confirmBox(services.DownloadPrompt(*m.downloadTarget), m.downloadTarget.Name, m.view.AssetURL(*m.downloadTarget))
}

func (m browseModel) viewHelp() string {
	h := m.help
	h.ShowAll = true

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorAccent).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			ui.StyleHeader.Render("Files - Keyboard Shortcuts"),
			"",
			h.View(m.keys),
			"",
			ui.StyleMuted.Render("Press ESC or ? to return"),
		))

	return renderModal(m.width, m.height, box)
}
