// Package web renders the file catalog as a static HTML gallery.
package web

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kamal-hamza/updeck/internal/core/domain"
)

// IndexFile is the gallery entry page written by Export
const IndexFile = "index.html"

// DetailDir holds one large-preview page per file
const DetailDir = "files"

// Tile is one grid cell of the gallery
type Tile struct {
	Record  domain.FileRecord
	Preview domain.Preview
	Href    string // detail page, relative to the index
}

// IndexPage is the data for the grid page
type IndexPage struct {
	Title     string
	Server    string
	Query     string
	TileSize  int
	Tiles     []Tile
	Generated time.Time
}

// DetailPage is the data for a single large preview
type DetailPage struct {
	Title   string
	Record  domain.FileRecord
	Preview domain.Preview
	Back    string
}

// Options controls an export
type Options struct {
	Title    string
	Server   string
	Query    string
	TileSize int
	AssetURL func(domain.FileRecord) string
	Now      func() time.Time
	// Progress is called after each page is written, index last
	Progress func(done, total int)
}

var funcs = template.FuncMap{
	"formatBytes": domain.FormatBytes,
	"style":       previewStyle,
	"isImage":     func(p domain.Preview) bool { return p.Kind == domain.PreviewImage },
	"isVideo":     func(p domain.Preview) bool { return p.Kind == domain.PreviewVideo },
	"isVideoTile": func(p domain.Preview) bool { return p.Kind == domain.PreviewVideoPlaceholder },
	"isAudio":     func(p domain.Preview) bool { return p.Kind == domain.PreviewAudio },
	"isFrame":     func(p domain.Preview) bool { return p.Kind == domain.PreviewFrame },
	"playGlyph":   func() string { return domain.PlayGlyph },
	"lower":       strings.ToLower,
}

var (
	indexTmpl  = template.Must(template.New("index").Funcs(funcs).Parse(previewPartial + indexHTML))
	detailTmpl = template.Must(template.New("detail").Funcs(funcs).Parse(previewPartial + detailHTML))
)

// previewStyle turns the preview's size hints into an inline style
func previewStyle(p domain.Preview) template.CSS {
	var parts []string
	if p.Width != "" {
		parts = append(parts, "width: "+p.Width)
	}
	if p.Height != "" {
		parts = append(parts, "height: "+p.Height)
	}
	return template.CSS(strings.Join(parts, "; "))
}

// RenderIndex writes the grid page
func RenderIndex(w io.Writer, page IndexPage) error {
	return indexTmpl.Execute(w, page)
}

// RenderDetail writes a large preview page
func RenderDetail(w io.Writer, page DetailPage) error {
	return detailTmpl.Execute(w, page)
}

// DetailName returns the detail page filename for the i-th tile
func DetailName(i int) string {
	return fmt.Sprintf("%04d.html", i)
}

// Export writes index.html and one detail page per record into dir and
// returns the index path. Existing gallery files are overwritten.
func Export(dir string, records []domain.FileRecord, opts Options) (string, error) {
	if opts.AssetURL == nil {
		return "", fmt.Errorf("export needs an asset URL builder")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Title == "" {
		opts.Title = "File Catalog"
	}
	if opts.Progress == nil {
		opts.Progress = func(int, int) {}
	}
	total := len(records) + 1

	detailDir := filepath.Join(dir, DetailDir)
	if err := os.MkdirAll(detailDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create gallery directory: %w", err)
	}

	tiles := make([]Tile, len(records))
	for i, rec := range records {
		url := opts.AssetURL(rec)
		name := DetailName(i)

		tiles[i] = Tile{
			Record:  rec,
			Preview: domain.RenderPreview(rec, url, domain.ModeCompact),
			Href:    DetailDir + "/" + name,
		}

		detail := DetailPage{
			Title:   opts.Title,
			Record:  rec,
			Preview: domain.RenderPreview(rec, url, domain.ModeLarge),
			Back:    "../" + IndexFile,
		}
		if err := writePage(filepath.Join(detailDir, name), func(w io.Writer) error {
			return RenderDetail(w, detail)
		}); err != nil {
			return "", err
		}
		opts.Progress(i+1, total)
	}

	indexPath := filepath.Join(dir, IndexFile)
	page := IndexPage{
		Title:     opts.Title,
		Server:    opts.Server,
		Query:     opts.Query,
		TileSize:  opts.TileSize,
		Tiles:     tiles,
		Generated: opts.Now(),
	}
	if err := writePage(indexPath, func(w io.Writer) error {
		return RenderIndex(w, page)
	}); err != nil {
		return "", err
	}
	opts.Progress(total, total)

	return indexPath, nil
}

func writePage(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}

	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

const previewPartial = `{{define "preview"}}
{{- if isImage . -}}
<img class="preview" src="{{.URL}}" alt="{{.Title}}" style="{{style .}}">
{{- else if isVideoTile . -}}
<div class="preview video-placeholder" style="{{style .}}">
  <span class="play">{{playGlyph}}</span>
  <div class="overlay">{{.Overlay}}</div>
</div>
{{- else if isVideo . -}}
<video class="preview" src="{{.URL}}" controls autoplay style="{{style .}}"></video>
{{- else if isAudio . -}}
<audio class="preview" src="{{.URL}}" controls style="{{style .}}"></audio>
{{- else if isFrame . -}}
<div class="frame-wrap" style="{{style .}}">
  <iframe class="preview{{if .Blurred}} blurred{{end}}" src="{{.URL}}" title="{{.Title}}" sandbox="{{.Sandbox}}" style="width: 100%; height: 100%"></iframe>
  {{- if .Overlay}}
  <div class="overlay">{{.Overlay}}</div>
  {{- end}}
</div>
{{- else -}}
<div class="preview unavailable" style="{{style .}}">{{.Overlay}}</div>
{{- end -}}
{{end}}`

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 0; padding: 20px; background: #1e1e2e; color: #cdd6f4; }
  header { display: flex; gap: 16px; align-items: center; margin-bottom: 20px; }
  #search { padding: 8px; width: 320px; }
  .grid { display: grid; gap: 16px; grid-template-columns: repeat(auto-fill, minmax({{.TileSize}}px, 1fr)); }
  .tile { background: #313244; border-radius: 8px; padding: 8px; text-decoration: none; color: inherit; display: block; }
  .tile .name { margin-top: 6px; font-size: 0.9em; word-break: break-all; }
  .tile .meta { font-size: 0.8em; color: #a6adc8; }
  .video-placeholder, .unavailable, .frame-wrap { position: relative; display: flex; align-items: center; justify-content: center; background: #11111b; overflow: hidden; }
  .play { font-size: 2.5em; }
  .overlay { position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; background: rgba(0, 0, 0, 0.45); }
  .blurred { filter: blur(4px); pointer-events: none; }
  .empty, .error { color: #f38ba8; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <input id="search" type="search" placeholder="Search files..." value="{{.Query}}">
</header>
{{if .Tiles}}
<div class="grid" id="grid">
{{range .Tiles}}
  <a class="tile" href="{{.Href}}" data-name="{{lower .Record.Name}}">
    {{template "preview" .Preview}}
    <div class="name">{{.Record.Name}}</div>
    <div class="meta">{{formatBytes .Record.Size}}</div>
  </a>
{{end}}
</div>
{{else}}
<p class="empty">No files.</p>
{{end}}
<footer><small>{{if .Server}}{{.Server}} · {{end}}generated {{.Generated.Format "2006-01-02 15:04:05"}}</small></footer>
<script>
  const search = document.getElementById("search");
  const filter = () => {
    const q = search.value.toLowerCase();
    document.querySelectorAll(".tile").forEach((tile) => {
      tile.style.display = tile.dataset.name.includes(q) ? "" : "none";
    });
  };
  search.addEventListener("input", filter);
  filter();
</script>
</body>
</html>
`

const detailHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Record.Name}} - {{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 0; padding: 20px; background: rgba(0, 0, 0, 0.85); color: #eee; display: flex; flex-direction: column; align-items: center; }
  .close { align-self: flex-end; color: #eee; font-size: 1.5em; text-decoration: none; }
  .unavailable { display: flex; align-items: center; justify-content: center; }
  img.preview { object-fit: contain; }
</style>
</head>
<body>
<a class="close" href="{{.Back}}" title="Close">&times;</a>
<h2>{{.Record.Name}}</h2>
{{template "preview" .Preview}}
<p><small>{{formatBytes .Record.Size}}</small></p>
</body>
</html>
`
