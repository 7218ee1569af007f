package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports/mocks"
	"github.com/kamal-hamza/updeck/internal/core/services"
)

func catalogRecords() []domain.FileRecord {
	return []domain.FileRecord{
		{ID: "1", Name: "cat.png", Size: 2048},
		{ID: "2", Name: "clip.mp4", Size: 4096},
		{ID: "3", Name: "song.mp3", Size: 100},
		{ID: "4", Name: "notes.txt", Size: 11},
		{ID: "5", Name: "archive.zip", Size: 1},
		{ID: "6", Name: "catalog.pdf", Size: 5},
		{ID: "7", Name: "dog.jpg", Size: 7},
	}
}

// newTestCatalogModel returns a sized model with records already loaded
func newTestCatalogModel(t *testing.T, records []domain.FileRecord) (catalogModel, *mocks.MockFileClient, *mocks.MockOpener) {
	t.Helper()

	client := mocks.NewMockFileClient(records...)
	client.SetContent("notes.txt", []byte("hello world"))
	opener := mocks.NewMockOpener()

	view := services.NewCatalogView(client)
	m := newCatalogModel(context.Background(), view, client, opener, 1024, "2006-01-02")

	updated, _ := m.Update(filesLoadedMsg{records: records})
	m = updated.(catalogModel)
	updated, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(catalogModel), client, opener
}

func catalogKey(m catalogModel, msg tea.KeyMsg) (catalogModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(catalogModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCatalogModelInitialization(t *testing.T) {
	client := mocks.NewMockFileClient()
	m := newCatalogModel(context.Background(), services.NewCatalogView(client), client, mocks.NewMockOpener(), 1024, "")

	if m.mode != catalogModeGrid {
		t.Errorf("Expected grid mode, got %v", m.mode)
	}
	if m.ready {
		t.Error("Expected ready to be false initially")
	}
	if m.view.Loaded() {
		t.Error("Expected nothing loaded before Init runs")
	}
	if m.Init() == nil {
		t.Error("Expected Init to start the fetch")
	}
}

func TestCatalogGridGeometry(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())

	// 300px tiles are 30 columns wide; 120/(30+3) = 3 per row
	if got := m.columns(); got != 3 {
		t.Fatalf("Expected 3 columns, got %d", got)
	}
	if !strings.Contains(m.View(), "cat.png") {
		t.Error("Expected the grid to show the first tile")
	}
}

func TestCatalogNavigation(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())

	steps := []struct {
		name     string
		msg      tea.KeyMsg
		expected int
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, 1},
		{"down one row", tea.KeyMsg{Type: tea.KeyDown}, 4},
		{"left", runes("h"), 3},
		{"up one row", runes("k"), 0},
		{"up at top stays", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"last", runes("G"), 6},
		{"right at end stays", tea.KeyMsg{Type: tea.KeyRight}, 6},
		{"first", runes("g"), 0},
	}

	for _, step := range steps {
		m, _ = catalogKey(m, step.msg)
		if m.cursor != step.expected {
			t.Fatalf("%s: expected cursor %d, got %d", step.name, step.expected, m.cursor)
		}
	}
}

func TestCatalogResize(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())

	m, _ = catalogKey(m, runes("+"))
	if m.view.TileSize() != 350 {
		t.Errorf("Expected 350px after growing, got %d", m.view.TileSize())
	}

	for i := 0; i < 5; i++ {
		m, _ = catalogKey(m, runes("-"))
	}
	if m.view.TileSize() != services.MinTileSize {
		t.Errorf("Expected tiles clamped to %d, got %d", services.MinTileSize, m.view.TileSize())
	}

	for i := 0; i < 30; i++ {
		m, _ = catalogKey(m, runes("+"))
	}
	if m.view.TileSize() != services.MaxTileSize {
		t.Errorf("Expected tiles clamped to %d, got %d", services.MaxTileSize, m.view.TileSize())
	}
	if m.columns() != 1 {
		t.Errorf("Expected a single column for the largest tiles, got %d", m.columns())
	}
}

func TestCatalogSearch(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())

	m, _ = catalogKey(m, runes("/"))
	if m.mode != catalogModeSearch {
		t.Fatalf("Expected search mode, got %v", m.mode)
	}

	for _, r := range "CAT" {
		m, _ = catalogKey(m, runes(string(r)))
	}

	if m.view.Query() != "CAT" {
		t.Errorf("Expected query 'CAT', got %q", m.view.Query())
	}
	filtered := m.view.Filtered()
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 matches (case-insensitive), got %d", len(filtered))
	}
	if filtered[0].Name != "cat.png" || filtered[1].Name != "catalog.pdf" {
		t.Errorf("Unexpected matches: %v", filtered)
	}

	m, _ = catalogKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != catalogModeGrid {
		t.Errorf("Expected grid mode after esc, got %v", m.mode)
	}
	if m.view.Query() != "" || len(m.view.Filtered()) != 7 {
		t.Errorf("Expected search cleared, got query %q with %d files", m.view.Query(), len(m.view.Filtered()))
	}
}

func TestCatalogSearch_NoMatches(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())

	m, _ = catalogKey(m, runes("/"))
	m, _ = catalogKey(m, runes("z"))
	m, _ = catalogKey(m, runes("z"))

	if m.cursor != 0 {
		t.Errorf("Expected cursor reset to 0, got %d", m.cursor)
	}
	if !strings.Contains(m.View(), "No files match your search.") {
		t.Error("Expected empty search message")
	}
}

func TestCatalogDocumentPreview(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())
	m.cursor = 3 // notes.txt

	m, cmd := catalogKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != catalogModePreview {
		t.Fatalf("Expected preview mode, got %v", m.mode)
	}
	opened, ok := m.view.Opened()
	if !ok || opened.Name != "notes.txt" {
		t.Fatalf("Expected notes.txt opened, got %v %v", opened, ok)
	}
	if !m.document.loading {
		t.Error("Expected the document to be loading")
	}
	if cmd == nil {
		t.Fatal("Expected a fetch command")
	}

	msg, ok := cmd().(documentLoadedMsg)
	if !ok {
		t.Fatalf("Expected documentLoadedMsg")
	}
	if msg.err != nil {
		t.Fatalf("Unexpected fetch error: %v", msg.err)
	}
	if !strings.Contains(msg.content, "hello world") {
		t.Errorf("Expected document body in preview, got %q", msg.content)
	}

	updated, _ := m.Update(msg)
	m = updated.(catalogModel)
	if m.document.loading {
		t.Error("Expected loading to finish")
	}
	if !strings.Contains(m.View(), "notes.txt") {
		t.Error("Expected the modal to show the file name")
	}

	m, _ = catalogKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.view.Opened(); ok {
		t.Error("Expected preview closed")
	}
	if m.mode != catalogModeGrid {
		t.Errorf("Expected grid mode after closing, got %v", m.mode)
	}
}

func TestCatalogDocumentPreview_StaleResult(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())
	m.cursor = 3

	m, cmd := catalogKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = catalogKey(m, tea.KeyMsg{Type: tea.KeyEsc})

	// the fetch finishes after the modal closed
	updated, _ := m.Update(cmd())
	m = updated.(catalogModel)

	if _, ok := m.view.Opened(); ok {
		t.Error("A late document must not reopen the preview")
	}
	if m.mode != catalogModeGrid {
		t.Errorf("Expected grid mode, got %v", m.mode)
	}
}

func TestFetchDocument_Truncation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		limit     int64
		truncated bool
	}{
		{"shorter than limit", "abcdefghi", 10, false},
		{"exactly limit", "abcdefghij", 10, false},
		{"longer than limit", "abcdefghijZ", 10, true},
		{"no limit", "abcdefghijZ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.FileRecord{Name: "doc.txt"}
			client := mocks.NewMockFileClient(rec)
			client.SetContent("doc.txt", []byte(tt.body))

			msg := fetchDocument(context.Background(), client, rec, tt.limit)().(documentLoadedMsg)
			if msg.err != nil {
				t.Fatalf("Unexpected fetch error: %v", msg.err)
			}
			if msg.truncated != tt.truncated {
				t.Errorf("truncated = %v, want %v", msg.truncated, tt.truncated)
			}
			if tt.truncated && strings.Contains(msg.content, "Z") {
				t.Errorf("Expected content cut at the limit, got %q", msg.content)
			}
		})
	}
}

func TestCatalogMouseClicks(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())
	if m.columns() < 2 {
		t.Fatalf("Expected at least 2 columns, got %d", m.columns())
	}

	click := func(m catalogModel, x, y int) catalogModel {
		updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		return updated.(catalogModel)
	}

	// second tile of the first row
	m = click(m, m.tileWidth()+3+2, m.gridTop()+1)
	opened, ok := m.view.Opened()
	if !ok || opened.Name != "clip.mp4" {
		t.Fatalf("Expected clip.mp4 opened by click, got %v %v", opened, ok)
	}
	if m.cursor != 1 || m.mode != catalogModePreview {
		t.Errorf("Expected cursor 1 in preview mode, got %d %v", m.cursor, m.mode)
	}

	// inside the box keeps it open
	m = click(m, m.width/2, m.height/2)
	if _, ok := m.view.Opened(); !ok {
		t.Error("A click on the modal content must not close it")
	}

	// outside the box closes it
	m = click(m, 0, 0)
	if _, ok := m.view.Opened(); ok {
		t.Error("Expected a click outside the modal to close it")
	}
	if m.mode != catalogModeGrid {
		t.Errorf("Expected grid mode, got %v", m.mode)
	}

	// below the last tile
	m = click(m, 0, m.height-1)
	if _, ok := m.view.Opened(); ok {
		t.Error("A click past the grid must not open anything")
	}
}

func TestCatalogMediaPreview(t *testing.T) {
	m, _, _ := newTestCatalogModel(t, catalogRecords())
	m.cursor = 1 // clip.mp4

	m, cmd := catalogKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no fetch for a video")
	}
	if p := m.view.Preview(catalogRecords()[1], domain.ModeLarge); !p.HasMedia() {
		t.Error("Expected the large video preview to mount a player")
	}
	if !strings.Contains(m.View(), "Press o to play") {
		t.Error("Expected the player panel in the modal")
	}
}

func TestCatalogOpenExternal(t *testing.T) {
	m, _, opener := newTestCatalogModel(t, catalogRecords())

	_, cmd := catalogKey(m, runes("o"))
	if cmd == nil {
		t.Fatal("Expected an open command")
	}
	status, ok := cmd().(statusMsg)
	if !ok || !strings.Contains(status.message, "cat.png") {
		t.Errorf("Unexpected status %+v", status)
	}

	opened := opener.Opened()
	if len(opened) != 1 || opened[0] != "http://mock.local/uploads/cat.png" {
		t.Errorf("Expected the display-name URL to be opened, got %v", opened)
	}
}

func TestCatalogLoadError(t *testing.T) {
	client := mocks.NewMockFileClient()
	m := newCatalogModel(context.Background(), services.NewCatalogView(client), client, mocks.NewMockOpener(), 1024, "")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(catalogModel)
	updated, _ = m.Update(filesLoadedMsg{err: errors.New("connection refused")})
	m = updated.(catalogModel)

	view := m.View()
	if !strings.Contains(view, "Could not load files: connection refused") {
		t.Errorf("Expected error banner, got:\n%s", view)
	}
	if strings.Contains(view, "No files on the server yet.") {
		t.Error("An error must not render as an empty catalog")
	}

	_, cmd := catalogKey(m, runes("r"))
	if cmd == nil {
		t.Error("Expected reload to fetch again")
	}
}

func TestRenderCompactPreview(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.FileRecord
		contains []string
	}{
		{"video placeholder", domain.FileRecord{Name: "clip.webm"}, []string{domain.PlayGlyph, domain.OverlayClickToView}},
		{"obscured document", domain.FileRecord{Name: "page.html"}, []string{"░", domain.OverlayClickToView}},
		{"unknown", domain.FileRecord{Name: "blob"}, []string{domain.TextUnavailable}},
		{"image", domain.FileRecord{Name: "cat.png"}, []string{"PNG"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.RenderPreview(tt.record, "http://x/"+tt.record.Name, domain.ModeCompact)
			out := renderCompactPreview(p, 30, 6)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("Expected %q in compact preview:\n%s", want, out)
				}
			}
			if lines := strings.Count(out, "\n") + 1; lines != 6 {
				t.Errorf("Expected 6 rows, got %d", lines)
			}
		})
	}
}
