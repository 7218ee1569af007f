package domain

import (
	"strings"
	"time"
)

// FileRecord is one uploaded file as returned by the listing endpoint.
// JSON field names match the backend and must round-trip unchanged.
type FileRecord struct {
	ID       string `json:"id"`
	Filename string `json:"filename"` // stored name on the backend
	Name     string `json:"name"`     // display name
	Size     int64  `json:"size"`
	Date     string `json:"date"`
}

// dateLayouts are tried in order when parsing FileRecord.Date
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Extension returns the lowercased text after the last dot of the display name,
// or "" when the name has no dot.
func (f FileRecord) Extension() string {
	return ExtensionOf(f.Name)
}

// StoredName returns the backend filename, falling back to the display name
// for listings that only carry one of them.
func (f FileRecord) StoredName() string {
	if f.Filename != "" {
		return f.Filename
	}
	return f.Name
}

// ModifiedAt parses Date. Unparsable dates yield the zero time.
func (f FileRecord) ModifiedAt() time.Time {
	raw := strings.TrimSpace(f.Date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// GetDisplayDate returns the modification time in the given layout,
// or the raw date string when it cannot be parsed.
func (f FileRecord) GetDisplayDate(layout string) string {
	t := f.ModifiedAt()
	if t.IsZero() {
		return f.Date
	}
	return t.Local().Format(layout)
}

// MatchesQuery reports whether the display name contains query, ignoring case.
// An empty query matches everything.
func (f FileRecord) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(f.Name), strings.ToLower(query))
}

// ExtensionOf returns the lowercased extension of name without the dot
func ExtensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// FilterByName returns the records whose display name contains query.
// The result is a new slice; records keep their relative order.
func FilterByName(records []FileRecord, query string) []FileRecord {
	filtered := make([]FileRecord, 0, len(records))
	for _, r := range records {
		if r.MatchesQuery(query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
