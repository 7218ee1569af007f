package domain

import (
	"fmt"
	"slices"
	"strings"
)

// SortField is a sortable column of the file table
type SortField string

const (
	SortByID   SortField = "id"
	SortByName SortField = "name"
	SortBySize SortField = "size"
	SortByDate SortField = "date"
)

// SortFields lists the columns in table order
var SortFields = []SortField{SortByID, SortByName, SortBySize, SortByDate}

// SortDirection is ascending or descending
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortSpec is the active sort of the table
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

// ParseSortField validates a column name from flags or config
func ParseSortField(s string) (SortField, error) {
	field := SortField(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortFields, field) {
		return field, nil
	}
	return "", fmt.Errorf("invalid sort field %q (expected id, name, size or date)", s)
}

// DefaultDirection is the direction used the first time a column is clicked.
// Dates start newest-first; every other column starts ascending.
func DefaultDirection(field SortField) SortDirection {
	if field == SortByDate {
		return Descending
	}
	return Ascending
}

// Toggle returns the spec after clicking field's header, starting from current
// (nil when the table is unsorted).
func Toggle(current *SortSpec, field SortField) SortSpec {
	if current != nil && current.Field == field {
		next := Ascending
		if current.Direction == Ascending {
			next = Descending
		}
		return SortSpec{Field: field, Direction: next}
	}
	return SortSpec{Field: field, Direction: DefaultDirection(field)}
}

// Indicator returns the arrow shown next to a column header
func (s *SortSpec) Indicator(field SortField) string {
	if s == nil || s.Field != field {
		return ""
	}
	if s.Direction == Ascending {
		return "↑"
	}
	return "↓"
}

// CompareRecords orders a and b on field, ascending
func CompareRecords(a, b FileRecord, field SortField) int {
	switch field {
	case SortByID:
		return strings.Compare(a.ID, b.ID)
	case SortBySize:
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	case SortByDate:
		return a.ModifiedAt().Compare(b.ModifiedAt())
	default:
		return strings.Compare(a.Name, b.Name)
	}
}

// SortRecords returns a sorted copy of records. The input is never modified.
func SortRecords(records []FileRecord, spec SortSpec) []FileRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b FileRecord) int {
		result := CompareRecords(a, b, spec.Field)
		if spec.Direction == Descending {
			return -result
		}
		return result
	})
	return sorted
}
