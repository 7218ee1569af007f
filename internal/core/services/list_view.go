package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports"
)

// ErrDeleteFailed is returned when the server does not confirm a deletion
var ErrDeleteFailed = errors.New("server did not confirm deletion")

// ListViewConfig tunes the windowed reveal
type ListViewConfig struct {
	PageSize        int // initial visible rows and growth step
	ScrollThreshold int // distance from the bottom that reveals the next page
}

// ListView holds the state of the file table: the record snapshot, active
// sort, search query, visible window and selection.
type ListView struct {
	client    ports.FileClient
	clipboard ports.Clipboard
	opener    ports.URLOpener
	notifier  ports.Notifier

	pageSize  int
	threshold int

	records  []domain.FileRecord
	sort     *domain.SortSpec
	query    string
	visible  int
	selected map[string]struct{}
	loadErr  error
	loaded   bool
}

// NewListView creates a list view. A zero cfg uses domain.PageSize and
// domain.DefaultScrollThreshold.
func NewListView(client ports.FileClient, clipboard ports.Clipboard, opener ports.URLOpener, notifier ports.Notifier, cfg ListViewConfig) *ListView {
	if cfg.PageSize <= 0 {
		cfg.PageSize = domain.PageSize
	}
	if cfg.ScrollThreshold <= 0 {
		cfg.ScrollThreshold = domain.DefaultScrollThreshold
	}
	if notifier == nil {
		notifier = ports.NotifierFunc(func(domain.Notice) {})
	}

	return &ListView{
		client:    client,
		clipboard: clipboard,
		opener:    opener,
		notifier:  notifier,
		pageSize:  cfg.PageSize,
		threshold: cfg.ScrollThreshold,
		visible:   cfg.PageSize,
		selected:  make(map[string]struct{}),
	}
}

// Load fetches the collection and stores the outcome
func (v *ListView) Load(ctx context.Context) error {
	records, err := v.client.List(ctx)
	v.ApplyLoad(records, err)
	return v.loadErr
}

// ApplyLoad stores the result of a fetch. A successful fetch re-applies the
// active sort so a preset column order survives the reload.
func (v *ListView) ApplyLoad(records []domain.FileRecord, err error) {
	v.loaded = true
	if err != nil {
		v.records = nil
		v.loadErr = fmt.Errorf("failed to load files: %w", err)
		return
	}
	v.loadErr = nil
	if v.sort != nil {
		records = domain.SortRecords(records, *v.sort)
	}
	v.records = records
}

// LoadErr returns the last fetch error, if any
func (v *ListView) LoadErr() error { return v.loadErr }

// Loaded reports whether a fetch has completed
func (v *ListView) Loaded() bool { return v.loaded }

// Records returns the full snapshot in its current order
func (v *ListView) Records() []domain.FileRecord { return v.records }

// Sort returns the active sort, or nil when the table is unsorted
func (v *ListView) Sort() *domain.SortSpec { return v.sort }

// SortIndicator returns the arrow for field's header
func (v *ListView) SortIndicator(field domain.SortField) string {
	return v.sort.Indicator(field)
}

// ToggleSort applies a header click on field and reorders the snapshot
func (v *ListView) ToggleSort(field domain.SortField) {
	v.SetSort(domain.Toggle(v.sort, field))
}

// SetSort applies spec directly
func (v *ListView) SetSort(spec domain.SortSpec) {
	v.sort = &spec
	v.records = domain.SortRecords(v.records, spec)
}

// Query returns the search text
func (v *ListView) Query() string { return v.query }

// SetQuery replaces the search text and shrinks the window back to one page
func (v *ListView) SetQuery(q string) {
	v.query = q
	v.visible = v.pageSize
}

// Filtered returns the records matching the query, in snapshot order
func (v *ListView) Filtered() []domain.FileRecord {
	return domain.FilterByName(v.records, v.query)
}

// VisibleCount returns the window size
func (v *ListView) VisibleCount() int { return v.visible }

// Visible returns the first VisibleCount filtered records
func (v *ListView) Visible() []domain.FileRecord {
	filtered := v.Filtered()
	if len(filtered) > v.visible {
		return filtered[:v.visible]
	}
	return filtered
}

// HasMore reports whether filtered rows remain hidden below the window
func (v *ListView) HasMore() bool {
	return len(v.Filtered()) > v.visible
}

// OnScroll grows the window by one page when m is near the bottom.
// It reports whether the window grew.
func (v *ListView) OnScroll(m domain.ScrollMetrics) bool {
	if !m.NearBottom(v.threshold) {
		return false
	}
	next := domain.GrowWindow(v.visible, v.pageSize, len(v.Filtered()))
	if next <= v.visible {
		return false
	}
	v.visible = next
	return true
}

// SetSelected adds or removes id from the selection
func (v *ListView) SetSelected(id string, selected bool) {
	if selected {
		v.selected[id] = struct{}{}
	} else {
		delete(v.selected, id)
	}
}

// ToggleSelected flips id's membership in the selection
func (v *ListView) ToggleSelected(id string) {
	v.SetSelected(id, !v.IsSelected(id))
}

// IsSelected reports whether id is selected
func (v *ListView) IsSelected(id string) bool {
	_, ok := v.selected[id]
	return ok
}

// Selected returns the selected identifiers in sorted order
func (v *ListView) Selected() []string {
	ids := make([]string, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SelectedCount returns the selection size
func (v *ListView) SelectedCount() int { return len(v.selected) }

// AllVisibleSelected reports whether every visible row is selected.
// It is false when nothing is visible.
func (v *ListView) AllVisibleSelected() bool {
	visible := v.Visible()
	if len(visible) == 0 {
		return false
	}
	for _, r := range visible {
		if !v.IsSelected(r.ID) {
			return false
		}
	}
	return true
}

// ToggleSelectAll deselects exactly the visible rows when all of them are
// selected, and otherwise adds every visible row to the selection.
// Selections outside the window are kept either way.
func (v *ListView) ToggleSelectAll() {
	visible := v.Visible()
	all := v.AllVisibleSelected()
	for _, r := range visible {
		v.SetSelected(r.ID, !all)
	}
}

// AssetURL builds the table's asset URL, which uses the stored filename
func (v *ListView) AssetURL(record domain.FileRecord) string {
	return v.client.AssetURL(record.StoredName())
}

// DownloadPrompt is the question asked before opening a file that cannot
// be previewed
func DownloadPrompt(record domain.FileRecord) string {
	return fmt.Sprintf("This file is %s. Do you want to download it?", domain.FormatBytes(record.Size))
}

// OpenRecord opens record's asset URL outside the terminal. Files that cannot
// be previewed are confirmed first; it reports false when the user declines.
func (v *ListView) OpenRecord(ctx context.Context, record domain.FileRecord, confirmer ports.Confirmer) (bool, error) {
	if !domain.IsPreviewable(record.StoredName()) {
		if confirmer == nil || !confirmer.Confirm(DownloadPrompt(record)) {
			return false, nil
		}
	}

	if err := v.opener.Open(ctx, v.AssetURL(record)); err != nil {
		return false, fmt.Errorf("failed to open %s: %w", record.Name, err)
	}
	return true, nil
}

// CopyLink writes record's asset URL to the clipboard and notifies the outcome
func (v *ListView) CopyLink(record domain.FileRecord) error {
	if err := v.clipboard.WriteText(v.AssetURL(record)); err != nil {
		v.notifier.Notify(domain.Notice{Level: domain.NoticeError, Message: domain.MsgCopyFailed})
		return fmt.Errorf("failed to copy link: %w", err)
	}
	v.notifier.Notify(domain.Notice{Level: domain.NoticeSuccess, Message: domain.MsgLinkCopied})
	return nil
}

// RemoveRemote asks the server to delete filename without touching local state
func (v *ListView) RemoveRemote(ctx context.Context, filename string) error {
	ok, err := v.client.Remove(ctx, filename)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}
	if !ok {
		return fmt.Errorf("failed to delete %s: %w", filename, ErrDeleteFailed)
	}
	return nil
}

// ApplyDelete applies the outcome of RemoveRemote. On success every record
// stored as filename leaves the snapshot and the selection. Either way exactly
// one notice is sent.
func (v *ListView) ApplyDelete(filename string, err error) {
	if err != nil {
		v.notifier.Notify(domain.Notice{Level: domain.NoticeError, Message: domain.MsgDeleteFailed})
		return
	}

	kept := make([]domain.FileRecord, 0, len(v.records))
	for _, r := range v.records {
		if r.StoredName() == filename {
			delete(v.selected, r.ID)
			continue
		}
		kept = append(kept, r)
	}
	v.records = kept

	v.notifier.Notify(domain.Notice{Level: domain.NoticeSuccess, Message: domain.MsgFileDeleted})
}

// Delete removes record on the server and then locally. The caller is
// responsible for confirming with the user first.
func (v *ListView) Delete(ctx context.Context, record domain.FileRecord) error {
	filename := record.StoredName()
	err := v.RemoveRemote(ctx, filename)
	v.ApplyDelete(filename, err)
	return err
}
