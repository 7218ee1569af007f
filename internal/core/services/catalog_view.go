package services

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports"
)

// Tile size bounds for the catalog grid, in pixels
const (
	MinTileSize     = 200
	MaxTileSize     = 1000
	DefaultTileSize = 300
)

// CatalogView holds the state of the grid catalog: the fetched records,
// the live search query, the tile size and the record opened in the modal.
type CatalogView struct {
	client ports.FileClient

	records  []domain.FileRecord
	query    string
	tileSize int
	opened   *domain.FileRecord
	loadErr  error
	loaded   bool
}

// NewCatalogView creates a catalog view backed by client
func NewCatalogView(client ports.FileClient) *CatalogView {
	return &CatalogView{
		client:   client,
		tileSize: DefaultTileSize,
	}
}

// Load fetches the collection once and stores the outcome
func (v *CatalogView) Load(ctx context.Context) error {
	records, err := v.client.List(ctx)
	v.ApplyLoad(records, err)
	return v.loadErr
}

// ApplyLoad stores the result of a fetch performed elsewhere.
// On error the collection is left empty and the error is kept for display.
func (v *CatalogView) ApplyLoad(records []domain.FileRecord, err error) {
	v.loaded = true
	if err != nil {
		v.records = nil
		v.loadErr = fmt.Errorf("failed to load files: %w", err)
		return
	}
	v.records = records
	v.loadErr = nil
}

// LoadErr returns the last fetch error, if any
func (v *CatalogView) LoadErr() error { return v.loadErr }

// Loaded reports whether a fetch has completed, successfully or not
func (v *CatalogView) Loaded() bool { return v.loaded }

// Records returns the full collection
func (v *CatalogView) Records() []domain.FileRecord { return v.records }

// Query returns the current search text
func (v *CatalogView) Query() string { return v.query }

// SetQuery replaces the search text
func (v *CatalogView) SetQuery(q string) { v.query = q }

// Filtered returns the records whose name contains the query, ignoring case.
// It is recomputed on every call.
func (v *CatalogView) Filtered() []domain.FileRecord {
	return domain.FilterByName(v.records, v.query)
}

// TileSize returns the tile edge length in pixels
func (v *CatalogView) TileSize() int { return v.tileSize }

// SetTileSize sets the tile size, clamped to [MinTileSize, MaxTileSize]
func (v *CatalogView) SetTileSize(px int) {
	v.tileSize = ClampTileSize(px)
}

// ResizeBy grows or shrinks the tiles by delta pixels
func (v *CatalogView) ResizeBy(delta int) {
	v.SetTileSize(v.tileSize + delta)
}

// ClampTileSize bounds px to the allowed tile range
func ClampTileSize(px int) int {
	return min(max(px, MinTileSize), MaxTileSize)
}

// Open shows record in the large preview
func (v *CatalogView) Open(record domain.FileRecord) {
	r := record
	v.opened = &r
}

// Close dismisses the large preview
func (v *CatalogView) Close() { v.opened = nil }

// Opened returns the record in the large preview
func (v *CatalogView) Opened() (domain.FileRecord, bool) {
	if v.opened == nil {
		return domain.FileRecord{}, false
	}
	return *v.opened, true
}

// AssetURL builds the catalog's asset URL, which uses the display name
func (v *CatalogView) AssetURL(record domain.FileRecord) string {
	return v.client.AssetURL(record.Name)
}

// Preview returns the render instruction for record in mode
func (v *CatalogView) Preview(record domain.FileRecord, mode domain.PreviewMode) domain.Preview {
	return domain.RenderPreview(record, v.AssetURL(record), mode)
}
