package web

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kamal-hamza/updeck/internal/core/domain"
)

func fixtureRecords() []domain.FileRecord {
	return []domain.FileRecord{
		{ID: "1", Name: "cat.png", Size: 2048},
		{ID: "2", Name: "clip.mp4", Size: 4096},
		{ID: "3", Name: "song.mp3", Size: 100},
		{ID: "4", Name: "page.html", Size: 50},
		{ID: "5", Name: "archive.zip", Size: 1},
	}
}

func assetURL(r domain.FileRecord) string {
	return "http://localhost:3000/uploads/" + r.Name
}

func parse(t *testing.T, html []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func renderIndex(t *testing.T, records []domain.FileRecord) *goquery.Document {
	t.Helper()

	tiles := make([]Tile, len(records))
	for i, r := range records {
		tiles[i] = Tile{
			Record:  r,
			Preview: domain.RenderPreview(r, assetURL(r), domain.ModeCompact),
			Href:    DetailDir + "/" + DetailName(i),
		}
	}

	var buf bytes.Buffer
	err := RenderIndex(&buf, IndexPage{Title: "Files", TileSize: 300, Tiles: tiles, Generated: time.Unix(0, 0)})
	if err != nil {
		t.Fatalf("RenderIndex failed: %v", err)
	}
	return parse(t, buf.Bytes())
}

func TestRenderIndex_CompactPreviews(t *testing.T) {
	doc := renderIndex(t, fixtureRecords())

	if n := doc.Find("a.tile").Length(); n != 5 {
		t.Fatalf("expected 5 tiles, got %d", n)
	}

	img := doc.Find("img.preview")
	if img.Length() != 1 {
		t.Fatalf("expected 1 image, got %d", img.Length())
	}
	if src, _ := img.Attr("src"); src != "http://localhost:3000/uploads/cat.png" {
		t.Errorf("unexpected image src %q", src)
	}

	// no media element may be mounted for a video tile
	if n := doc.Find("video").Length(); n != 0 {
		t.Errorf("expected no video elements in the grid, got %d", n)
	}
	placeholder := doc.Find(".video-placeholder")
	if placeholder.Length() != 1 || !strings.Contains(placeholder.Text(), domain.OverlayClickToView) {
		t.Errorf("expected one video placeholder with overlay, got %q", placeholder.Text())
	}
	if !strings.Contains(placeholder.Find(".play").Text(), domain.PlayGlyph) {
		t.Error("expected play glyph in the placeholder")
	}

	if n := doc.Find("audio[controls]").Length(); n != 1 {
		t.Errorf("expected 1 audio element, got %d", n)
	}

	frame := doc.Find("iframe")
	if frame.Length() != 1 {
		t.Fatalf("expected 1 frame, got %d", frame.Length())
	}
	if sandbox, _ := frame.Attr("sandbox"); sandbox != domain.FrameSandbox {
		t.Errorf("unexpected sandbox %q", sandbox)
	}
	if !frame.HasClass("blurred") {
		t.Error("expected compact frame to be blurred")
	}
	if !strings.Contains(doc.Find(".frame-wrap .overlay").Text(), domain.OverlayClickToView) {
		t.Error("expected overlay on the compact frame")
	}

	if got := strings.TrimSpace(doc.Find(".unavailable").Text()); got != domain.TextUnavailable {
		t.Errorf("expected unavailable placeholder, got %q", got)
	}
}

func TestRenderIndex_TileMetadata(t *testing.T) {
	doc := renderIndex(t, fixtureRecords()[:1])

	tile := doc.Find("a.tile").First()
	if name, _ := tile.Attr("data-name"); name != "cat.png" {
		t.Errorf("unexpected data-name %q", name)
	}
	if href, _ := tile.Attr("href"); href != "files/0000.html" {
		t.Errorf("unexpected href %q", href)
	}
	if got := tile.Find(".meta").Text(); got != "2 KB" {
		t.Errorf("unexpected size label %q", got)
	}
}

func TestRenderIndex_Empty(t *testing.T) {
	doc := renderIndex(t, nil)
	if doc.Find(".empty").Length() != 1 {
		t.Error("expected empty-state message")
	}
}

func TestRenderIndex_EscapesNames(t *testing.T) {
	doc := renderIndex(t, []domain.FileRecord{{ID: "x", Name: `<script>alert(1)</script>.png`}})
	if doc.Find(".tile script").Length() != 0 {
		t.Error("file name was rendered as markup")
	}
}

func TestRenderDetail_LargePreviews(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.FileRecord
		selector string
	}{
		{"image", domain.FileRecord{Name: "cat.png"}, "img.preview"},
		{"video", domain.FileRecord{Name: "clip.webm"}, "video[controls]"},
		{"audio", domain.FileRecord{Name: "song.wav"}, "audio[controls]"},
		{"document", domain.FileRecord{Name: "main.go.txt"}, "iframe"},
		{"unknown", domain.FileRecord{Name: "blob"}, ".unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := RenderDetail(&buf, DetailPage{
				Title:   "Files",
				Record:  tt.record,
				Preview: domain.RenderPreview(tt.record, assetURL(tt.record), domain.ModeLarge),
				Back:    "../index.html",
			})
			if err != nil {
				t.Fatalf("RenderDetail failed: %v", err)
			}

			doc := parse(t, buf.Bytes())
			if doc.Find(tt.selector).Length() != 1 {
				t.Errorf("expected %s in detail page", tt.selector)
			}
			if href, _ := doc.Find("a.close").Attr("href"); href != "../index.html" {
				t.Errorf("unexpected close link %q", href)
			}
			if doc.Find(".blurred").Length() != 0 {
				t.Error("large preview must not be blurred")
			}
		})
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	index, err := Export(dir, fixtureRecords(), Options{
		Title:    "Uploads",
		TileSize: 250,
		AssetURL: assetURL,
		Now:      func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if index != filepath.Join(dir, IndexFile) {
		t.Errorf("unexpected index path %q", index)
	}

	entries, err := os.ReadDir(filepath.Join(dir, DetailDir))
	if err != nil {
		t.Fatalf("detail dir missing: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("expected 5 detail pages, got %d", len(entries))
	}

	data, err := os.ReadFile(index)
	if err != nil {
		t.Fatalf("index missing: %v", err)
	}
	doc := parse(t, data)
	if got := doc.Find("h1").Text(); got != "Uploads" {
		t.Errorf("unexpected title %q", got)
	}
	if !strings.Contains(doc.Find("style").Text(), "minmax(250px") {
		t.Error("tile size not applied to the grid")
	}

	detail, err := os.ReadFile(filepath.Join(dir, DetailDir, DetailName(1)))
	if err != nil {
		t.Fatalf("detail page missing: %v", err)
	}
	if parse(t, detail).Find("video").Length() != 1 {
		t.Error("expected the video detail page to mount the player")
	}
}

func TestExport_ReportsProgress(t *testing.T) {
	var calls [][2]int
	_, err := Export(t.TempDir(), fixtureRecords(), Options{
		AssetURL: assetURL,
		Progress: func(done, total int) {
			calls = append(calls, [2]int{done, total})
		},
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// one call per detail page plus the index
	if len(calls) != 6 {
		t.Fatalf("expected 6 progress calls, got %d", len(calls))
	}
	for i, c := range calls {
		if c[0] != i+1 || c[1] != 6 {
			t.Errorf("call %d: got %d/%d", i, c[0], c[1])
		}
	}
}

func TestExport_RequiresAssetURL(t *testing.T) {
	if _, err := Export(t.TempDir(), fixtureRecords(), Options{}); err == nil {
		t.Error("expected error without an asset URL builder")
	}
}
