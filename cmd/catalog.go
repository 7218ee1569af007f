package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports"
	"github.com/kamal-hamza/updeck/internal/core/services"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

var catalogSize int

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Aliases: []string{"grid"},
	Short:   "Browse files as a grid of previews (alias: grid)",
	Long: `Launch a full-screen grid of file tiles with live search.

Keyboard Shortcuts:
  Navigation:
    ←↑↓→ / hjkl  Move between tiles
    g / G        Jump to first / last tile

  Tiles:
    Enter        Open the large preview
    o            Open the file in the browser or player
    + / -        Grow / shrink tiles
    r            Reload from the server

  General:
    /            Search by name
    Esc          Clear search / close preview
    ?            Show help
    q            Quit`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().IntVarP(&catalogSize, "size", "s", 0, "Initial tile size in pixels (200-1000)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	view := services.NewCatalogView(fileClient)
	size := appConfig.TileSize
	if cmd.Flags().Changed("size") {
		size = catalogSize
	}
	view.SetTileSize(size)

	m := newCatalogModel(ctx, view, fileClient, openerAdapter, appConfig.PreviewBytes, appConfig.DisplayDateFormat)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running catalog: %w", err)
	}
	return nil
}

type catalogMode int

const (
	catalogModeGrid catalogMode = iota
	catalogModeSearch
	catalogModePreview
	catalogModeHelp
)

const (
	// pixelsPerColumn maps tile pixels to terminal columns
	pixelsPerColumn = 10

	// tileResizeStep is the pixel change per +/- press
	tileResizeStep = 50

	// catalogChrome is the rows taken by header, search bar and footer
	catalogChrome = 9
)

type catalogKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	External key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Reload   key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

func (k catalogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.External, k.Grow, k.Shrink, k.Search, k.Help, k.Quit}
}

func (k catalogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
		{k.Open, k.External, k.Grow, k.Shrink, k.Reload},
		{k.Search, k.Escape, k.Help, k.Quit},
	}
}

var catalogKeys = catalogKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "preview"),
	),
	External: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Grow: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "bigger"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "smaller"),
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
		key.WithHelp("esc", "back"),
	),
}

// documentPreview is the fetched body of the document in the large preview
type documentPreview struct {
	name     string
	loading  bool
	err      error
	viewport viewport.Model
}

type documentLoadedMsg struct {
	name      string
	content   string
	truncated bool
	err       error
}

type catalogModel struct {
	ctx          context.Context
	view         *services.CatalogView
	client       ports.FileClient
	opener       ports.URLOpener
	previewBytes int64
	dateFormat   string

	cursor        int
	offset        int // first visible grid row
	mode          catalogMode
	searchInput   textinput.Model
	help          help.Model
	keys          catalogKeyMap
	spinner       spinner.Model
	width         int
	height        int
	ready         bool
	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
	document      documentPreview
}

func newCatalogModel(ctx context.Context, view *services.CatalogView, client ports.FileClient, opener ports.URLOpener, previewBytes int64, dateFormat string) catalogModel {
	ti := textinput.New()
	ti.Placeholder = "Search files..."
	ti.CharLimit = 100
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.StylePrimary

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().Foreground(ui.ColorDefault)

	return catalogModel{
		ctx:          ctx,
		view:         view,
		client:       client,
		opener:       opener,
		previewBytes: previewBytes,
		dateFormat:   dateFormat,
		mode:         catalogModeGrid,
		searchInput:  ti,
		help:         help.New(),
		keys:         catalogKeys,
		spinner:      sp,
		document:     documentPreview{viewport: vp},
	}
}

func (m catalogModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadFiles(m.ctx, m.client))
}

func (m catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

		m.document.viewport.Width = max(msg.Width-12, 20)
		m.document.viewport.Height = max(msg.Height-14, 5)
		m.adjustViewport()
		return m, nil

	case filesLoadedMsg:
		m.view.ApplyLoad(msg.records, msg.err)
		m.clampCursor()
		return m, nil

	case documentLoadedMsg:
		opened, ok := m.view.Opened()
		if !ok || opened.Name != msg.name {
			// preview was closed or replaced while fetching
			return m, nil
		}
		m.document.loading = false
		m.document.err = msg.err
		content := msg.content
		if msg.truncated {
			content += "\n" + ui.StyleMuted.Render(fmt.Sprintf("… preview truncated at %s", domain.FormatBytes(m.previewBytes)))
		}
		m.document.viewport.SetContent(content)
		m.document.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.view.Loaded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(messageTTL)
		return m, clearMessageAfter(messageTTL)

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
		case catalogModeSearch:
			return m.updateSearch(msg)
		case catalogModePreview:
			return m.updatePreview(msg)
		case catalogModeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateGrid(msg)
		}
	}

	return m, nil
}

func (m catalogModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	files := m.view.Filtered()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(files)-1, 0)
		m.adjustViewport()

	case key.Matches(msg, m.keys.Open):
		if len(files) > 0 {
			return m.openPreview(files[m.cursor])
		}

	case key.Matches(msg, m.keys.External):
		if len(files) > 0 {
			rec := files[m.cursor]
			return m, openExternal(m.ctx, m.opener, m.view.AssetURL(rec), rec.Name)
		}

	case key.Matches(msg, m.keys.Grow):
		m.view.ResizeBy(tileResizeStep)
		m.adjustViewport()

	case key.Matches(msg, m.keys.Shrink):
		m.view.ResizeBy(-tileResizeStep)
		m.adjustViewport()

	case key.Matches(msg, m.keys.Reload):
		return m, loadFiles(m.ctx, m.client)

	case key.Matches(msg, m.keys.Search):
		m.mode = catalogModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.mode = catalogModeHelp
	}

	return m, nil
}

func (m catalogModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = catalogModeGrid
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.view.SetQuery("")
		m.cursor = 0
		m.offset = 0
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = catalogModeGrid
		m.searchInput.Blur()
		files := m.view.Filtered()
		if len(files) > 0 {
			return m.openPreview(files[m.cursor])
		}
		return m, nil

	// arrows only; letters go to the input
	case msg.Type == tea.KeyLeft:
		m.moveCursor(-1)
	case msg.Type == tea.KeyRight:
		m.moveCursor(1)
	case msg.Type == tea.KeyUp:
		m.moveCursor(-m.columns())
	case msg.Type == tea.KeyDown:
		m.moveCursor(m.columns())

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		// every keystroke refilters; there is no debounce
		m.view.SetQuery(m.searchInput.Value())
		m.clampCursor()
		return m, cmd
	}

	return m, nil
}

func (m catalogModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Open):
		m.closePreview()
		return m, nil

	case key.Matches(msg, m.keys.External):
		if rec, ok := m.view.Opened(); ok {
			return m, openExternal(m.ctx, m.opener, m.view.AssetURL(rec), rec.Name)
		}
	}

	var cmd tea.Cmd
	m.document.viewport, cmd = m.document.viewport.Update(msg)
	return m, cmd
}

func (m catalogModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = catalogModeGrid
	}
	return m, nil
}

func (m catalogModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch m.mode {
	case catalogModePreview:
		if msg.Button == tea.MouseButtonLeft && !m.insidePreview(msg.X, msg.Y) {
			m.closePreview()
			return m, nil
		}
		var cmd tea.Cmd
		m.document.viewport, cmd = m.document.viewport.Update(msg)
		return m, cmd
	case catalogModeGrid, catalogModeSearch:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-m.columns())
		case tea.MouseButtonWheelDown:
			m.moveCursor(m.columns())
		case tea.MouseButtonLeft:
			if i, ok := m.tileAt(msg.X, msg.Y); ok {
				m.cursor = i
				return m.openPreview(m.view.Filtered()[i])
			}
		}
	}
	return m, nil
}

// tileAt maps a screen cell to the index of the tile drawn there
func (m catalogModel) tileAt(x, y int) (int, bool) {
	if !m.view.Loaded() || m.view.LoadErr() != nil {
		return 0, false
	}
	y -= m.gridTop()
	if x < 0 || y < 0 {
		return 0, false
	}

	col := x / (m.tileWidth() + 3)
	row := y / m.tileHeight()
	if col >= m.columns() || row >= m.visibleRows() {
		return 0, false
	}

	i := (m.offset+row)*m.columns() + col
	if i >= len(m.view.Filtered()) {
		return 0, false
	}
	return i, true
}

// gridTop is the first screen row of the grid
func (m catalogModel) gridTop() int {
	search := renderSearchBox(m.searchInput.View(), m.mode == catalogModeSearch, m.searchInput.Value() == "", m.width)
	return lipgloss.Height(m.renderHeader()) + lipgloss.Height(search)
}

// insidePreview reports whether a screen cell falls on the modal box
func (m catalogModel) insidePreview(x, y int) bool {
	box, ok := m.previewBox()
	if !ok {
		return false
	}
	w, h := lipgloss.Size(box)
	left := max((m.width-w)/2, 0)
	top := max((m.height-h)/2, 0)
	return x >= left && x < left+w && y >= top && y < top+h
}

// openPreview shows rec large. Documents are fetched and highlighted.
func (m catalogModel) openPreview(rec domain.FileRecord) (tea.Model, tea.Cmd) {
	m.view.Open(rec)
	m.mode = catalogModePreview
	m.document = documentPreview{viewport: m.document.viewport}
	m.document.viewport.SetContent("")

	if m.view.Preview(rec, domain.ModeLarge).Kind != domain.PreviewFrame {
		return m, nil
	}

	m.document.name = rec.Name
	m.document.loading = true
	return m, fetchDocument(m.ctx, m.client, rec, m.previewBytes)
}

// closePreview unmounts the large preview; any player state goes with it
func (m *catalogModel) closePreview() {
	m.view.Close()
	m.document = documentPreview{viewport: m.document.viewport}
	m.document.viewport.SetContent("")
	m.mode = catalogModeGrid
}

func fetchDocument(ctx context.Context, client ports.FileClient, rec domain.FileRecord, limit int64) tea.Cmd {
	return func() tea.Msg {
		fetchLimit := limit
		if limit > 0 {
			// one extra byte tells a file of exactly limit bytes from a longer one
			fetchLimit = limit + 1
		}
		// the catalog addresses assets by display name
		data, err := client.Fetch(ctx, rec.Name, fetchLimit)
		if err != nil {
			return documentLoadedMsg{name: rec.Name, err: err}
		}
		truncated := limit > 0 && int64(len(data)) > limit
		if truncated {
			data = data[:limit]
		}
		return documentLoadedMsg{
			name:      rec.Name,
			content:   highlightSource(rec.Name, string(data)),
			truncated: truncated,
		}
	}
}

// Grid geometry

func (m catalogModel) tileWidth() int {
	return m.view.TileSize() / pixelsPerColumn
}

// previewRows is the height of the compact preview inside a tile
func (m catalogModel) previewRows() int {
	return max(m.tileWidth()/5, 2)
}

// tileHeight is the rendered height including border
func (m catalogModel) tileHeight() int {
	return m.previewRows() + 2 + 2
}

func (m catalogModel) columns() int {
	// border plus one column of gap
	return max(m.width/(m.tileWidth()+3), 1)
}

func (m catalogModel) visibleRows() int {
	return max((m.height-catalogChrome)/m.tileHeight(), 1)
}

func (m *catalogModel) moveCursor(delta int) {
	n := len(m.view.Filtered())
	if n == 0 {
		m.cursor = 0
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
	m.adjustViewport()
}

func (m *catalogModel) clampCursor() {
	n := len(m.view.Filtered())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

func (m *catalogModel) adjustViewport() {
	row := m.cursor / m.columns()
	rows := m.visibleRows()

	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}
	if row < m.offset {
		m.offset = row
	}
}

// Rendering

func (m catalogModel) View() string {
	if !m.ready {
		return "\n  Loading catalog..."
	}

	switch m.mode {
	case catalogModeHelp:
		return m.viewHelp()
	case catalogModePreview:
		return m.viewPreview()
	default:
		return m.viewGrid()
	}
}

func (m catalogModel) viewGrid() string {
	var body string
	switch {
	case !m.view.Loaded():
		body = lipgloss.Place(m.width, 5, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading files...")
	case m.view.LoadErr() != nil:
		body = renderLoadError(m.view.LoadErr(), m.width)
	default:
		body = m.renderGrid()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		renderSearchBox(m.searchInput.View(), m.mode == catalogModeSearch, m.searchInput.Value() == "", m.width),
		body,
		m.renderFooter(),
	)
}

func (m catalogModel) renderHeader() string {
	stats := fmt.Sprintf("%d files  %dpx", len(m.view.Filtered()), m.view.TileSize())
	return renderTitleBar("🗂  File Catalog", stats, m.width)
}

func (m catalogModel) renderGrid() string {
	files := m.view.Filtered()
	if len(files) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(2, 4)
		if m.view.Query() != "" {
			return emptyStyle.Render("No files match your search.")
		}
		return emptyStyle.Render("No files on the server yet.")
	}

	cols := m.columns()
	start := m.offset * cols
	end := min(start+m.visibleRows()*cols, len(files))

	var rows []string
	for i := start; i < end; i += cols {
		var tiles []string
		for j := i; j < min(i+cols, end); j++ {
			tiles = append(tiles, m.renderTile(files[j], j == m.cursor), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m catalogModel) renderTile(rec domain.FileRecord, selected bool) string {
	w := m.tileWidth()
	p := m.view.Preview(rec, domain.ModeCompact)

	borderColor := ui.ColorMuted
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorDefault)
	if selected {
		borderColor = ui.ColorPrimary
		nameStyle = ui.StyleSelected
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		renderCompactPreview(p, w, m.previewRows()),
		nameStyle.Render(ui.Truncate(rec.Name, w)),
		ui.StyleMuted.Render(domain.FormatBytes(rec.Size)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(w).
		Render(content)
}

// renderCompactPreview draws the terminal stand-in for a grid preview.
// Videos never get a player here, only the glyph and overlay.
func renderCompactPreview(p domain.Preview, width, rows int) string {
	icon := ui.CategoryIcon(p.Category.String())
	lines := make([]string, rows)
	mid := rows / 2

	fill := func(char string) {
		for i := range lines {
			lines[i] = strings.Repeat(char, width)
		}
	}
	center := func(row int, text string, chars string) {
		lines[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, text, lipgloss.WithWhitespaceChars(chars))
	}

	switch p.Kind {
	case domain.PreviewImage:
		fill(" ")
		center(mid, icon+" "+strings.ToUpper(domain.ExtensionOf(p.Title)), " ")

	case domain.PreviewVideoPlaceholder:
		fill(" ")
		center(max(mid-1, 0), domain.PlayGlyph, " ")
		center(min(mid+1, rows-1), p.Overlay, " ")

	case domain.PreviewAudio:
		fill(" ")
		bar := icon + " " + domain.PlayGlyph + " " + strings.Repeat("─", max(width-8, 1))
		center(mid, ui.Truncate(bar, width), " ")

	case domain.PreviewFrame:
		// obscured block in place of the blurred frame
		fill("░")
		center(mid, " "+p.Overlay+" ", "░")

	default:
		fill(" ")
		center(mid, p.Overlay, " ")
	}

	style := lipgloss.NewStyle().Foreground(ui.ColorInfo)
	if p.Kind == domain.PreviewUnavailable || p.Blurred {
		style = ui.StyleMuted
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m catalogModel) renderFooter() string {
	fallback := "Ready"
	if m.view.LoadErr() != nil {
		fallback = "Offline"
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

func (m catalogModel) viewPreview() string {
	box, ok := m.previewBox()
	if !ok {
		return m.viewGrid()
	}
	return renderModal(m.width, m.height, box)
}

// previewBox renders the modal content for the opened record
func (m catalogModel) previewBox() (string, bool) {
	rec, ok := m.view.Opened()
	if !ok {
		return "", false
	}
	p := m.view.Preview(rec, domain.ModeLarge)

	titleStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)
	meta := ui.StyleMuted.Render(fmt.Sprintf("%s · %s · %s",
		p.Category,
		domain.FormatBytes(rec.Size),
		rec.GetDisplayDate(m.dateFormat)))

	var body string
	switch p.Kind {
	case domain.PreviewFrame:
		switch {
		case m.document.loading:
			body = ui.StyleMuted.Render("Fetching document...")
		case m.document.err != nil:
			body = ui.FormatError("Could not fetch document: " + m.document.err.Error())
		default:
			body = m.document.viewport.View()
		}

	case domain.PreviewVideo, domain.PreviewAudio:
		player := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ui.ColorInfo).
			Padding(1, 4).
			Render(ui.StyleInfo.Render(domain.PlayGlyph + "  Press o to play in your default player"))
		body = lipgloss.JoinVertical(lipgloss.Center, player, ui.StyleMuted.Render(p.URL))

	case domain.PreviewImage:
		body = lipgloss.JoinVertical(lipgloss.Center,
			ui.StyleInfo.Render(ui.IconImage+"  Press o to view full size"),
			ui.StyleMuted.Render(p.URL))

	default:
		body = ui.StyleMuted.Render(domain.TextUnavailable)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 2).
		Width(max(m.width-6, 30)).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(ui.CategoryIcon(p.Category.String())+"  "+rec.Name),
			meta,
			"",
			body,
			"",
			ui.StyleMuted.Render("[esc] Close  [o] Open externally  [↑↓/PgUp/PgDn] Scroll"),
		))

	return box, true
}

func (m catalogModel) viewHelp() string {
	h := m.help
	h.ShowAll = true

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorAccent).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			ui.StyleHeader.Render("Catalog - Keyboard Shortcuts"),
			"",
			h.View(m.keys),
			"",
			ui.StyleMuted.Render("Press ESC or ? to return"),
		))

	return renderModal(m.width, m.height, box)
}
