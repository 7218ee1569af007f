package domain

import (
	"slices"
	"testing"
)

func sampleRecords() []FileRecord {
	return []FileRecord{
		{ID: "c", Filename: "c.txt", Name: "charlie.txt", Size: 300, Date: "2024-03-01T10:00:00Z"},
		{ID: "a", Filename: "a.png", Name: "alpha.png", Size: 100, Date: "2024-01-01T10:00:00Z"},
		{ID: "b", Filename: "b.mp4", Name: "bravo.mp4", Size: 200, Date: "2024-02-01T10:00:00Z"},
	}
}

func ids(records []FileRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		current  *SortSpec
		field    SortField
		expected SortSpec
	}{
		{"first click on name is ascending", nil, SortByName, SortSpec{SortByName, Ascending}},
		{"first click on size is ascending", nil, SortBySize, SortSpec{SortBySize, Ascending}},
		{"first click on date is descending", nil, SortByDate, SortSpec{SortByDate, Descending}},
		{"second click flips asc", &SortSpec{SortByID, Ascending}, SortByID, SortSpec{SortByID, Descending}},
		{"second click flips desc", &SortSpec{SortByDate, Descending}, SortByDate, SortSpec{SortByDate, Ascending}},
		{"switching field resets to default", &SortSpec{SortByName, Descending}, SortByDate, SortSpec{SortByDate, Descending}},
		{"switching to size is ascending", &SortSpec{SortByDate, Ascending}, SortBySize, SortSpec{SortBySize, Ascending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Toggle(tt.current, tt.field)
			if got != tt.expected {
				t.Errorf("Toggle() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestSortRecords(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		spec     SortSpec
		expected []string
	}{
		{SortSpec{SortByID, Ascending}, []string{"a", "b", "c"}},
		{SortSpec{SortByID, Descending}, []string{"c", "b", "a"}},
		{SortSpec{SortByName, Ascending}, []string{"a", "b", "c"}},
		{SortSpec{SortBySize, Ascending}, []string{"a", "b", "c"}},
		{SortSpec{SortBySize, Descending}, []string{"c", "b", "a"}},
		{SortSpec{SortByDate, Descending}, []string{"c", "b", "a"}},
		{SortSpec{SortByDate, Ascending}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		got := ids(SortRecords(records, tt.spec))
		if !slices.Equal(got, tt.expected) {
			t.Errorf("SortRecords(%+v) = %v, expected %v", tt.spec, got, tt.expected)
		}
	}

	// input untouched
	if !slices.Equal(ids(records), []string{"c", "a", "b"}) {
		t.Errorf("SortRecords modified its input: %v", ids(records))
	}
}

func TestSortRecords_Idempotent(t *testing.T) {
	spec := SortSpec{SortBySize, Ascending}
	once := SortRecords(sampleRecords(), spec)
	twice := SortRecords(once, spec)
	if !slices.Equal(ids(once), ids(twice)) {
		t.Errorf("sorting twice changed order: %v vs %v", ids(once), ids(twice))
	}
}

func TestSortRecords_DescendingReversesAscending(t *testing.T) {
	asc := ids(SortRecords(sampleRecords(), SortSpec{SortBySize, Ascending}))
	desc := ids(SortRecords(sampleRecords(), SortSpec{SortBySize, Descending}))
	slices.Reverse(desc)
	if !slices.Equal(asc, desc) {
		t.Errorf("descending is not the reverse of ascending: %v vs %v", asc, desc)
	}
}

func TestParseSortField(t *testing.T) {
	if f, err := ParseSortField(" Size "); err != nil || f != SortBySize {
		t.Errorf("ParseSortField(\" Size \") = %q, %v", f, err)
	}
	if _, err := ParseSortField("color"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestSortIndicator(t *testing.T) {
	var none *SortSpec
	if none.Indicator(SortByName) != "" {
		t.Error("unsorted table should have no indicator")
	}

	spec := &SortSpec{SortByName, Ascending}
	if spec.Indicator(SortByName) != "↑" {
		t.Errorf("expected ↑, got %q", spec.Indicator(SortByName))
	}
	if spec.Indicator(SortBySize) != "" {
		t.Errorf("expected no indicator on inactive column")
	}

	spec.Direction = Descending
	if spec.Indicator(SortByName) != "↓" {
		t.Errorf("expected ↓, got %q", spec.Indicator(SortByName))
	}
}
