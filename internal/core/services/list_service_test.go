package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports/mocks"
)

func TestListService_Execute(t *testing.T) {
	fixtures := []domain.FileRecord{
		{ID: "1", Filename: "1-zebra.png", Name: "zebra.png", Size: 10, Date: "2024-01-03T00:00:00Z"},
		{ID: "2", Filename: "2-apple.mp4", Name: "apple.mp4", Size: 30, Date: "2024-01-01T00:00:00Z"},
		{ID: "3", Filename: "3-mango.txt", Name: "mango.txt", Size: 20, Date: "2024-01-02T00:00:00Z"},
	}

	tests := []struct {
		name          string
		request       ListRequest
		expectedNames []string
		expectedTotal int
	}{
		{
			name:          "server order when unsorted",
			request:       ListRequest{},
			expectedNames: []string{"zebra.png", "apple.mp4", "mango.txt"},
			expectedTotal: 3,
		},
		{
			name:          "sort by name",
			request:       ListRequest{SortBy: domain.SortByName},
			expectedNames: []string{"apple.mp4", "mango.txt", "zebra.png"},
			expectedTotal: 3,
		},
		{
			name:          "sort by name reversed",
			request:       ListRequest{SortBy: domain.SortByName, Reverse: true},
			expectedNames: []string{"zebra.png", "mango.txt", "apple.mp4"},
			expectedTotal: 3,
		},
		{
			name:          "sort by date is newest first",
			request:       ListRequest{SortBy: domain.SortByDate},
			expectedNames: []string{"zebra.png", "mango.txt", "apple.mp4"},
			expectedTotal: 3,
		},
		{
			name:          "sort by size",
			request:       ListRequest{SortBy: domain.SortBySize},
			expectedNames: []string{"zebra.png", "mango.txt", "apple.mp4"},
			expectedTotal: 3,
		},
		{
			name:          "query filter",
			request:       ListRequest{Query: "AN"},
			expectedNames: []string{"mango.txt"},
			expectedTotal: 1,
		},
		{
			name:          "limit keeps total",
			request:       ListRequest{SortBy: domain.SortByName, Limit: 2},
			expectedNames: []string{"apple.mp4", "mango.txt"},
			expectedTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewListService(mocks.NewMockFileClient(fixtures...))

			resp, err := service.Execute(context.Background(), tt.request)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if resp.Total != tt.expectedTotal {
				t.Errorf("Expected total %d, got %d", tt.expectedTotal, resp.Total)
			}

			if len(resp.Files) != len(tt.expectedNames) {
				t.Fatalf("Expected %d files, got %d", len(tt.expectedNames), len(resp.Files))
			}
			for i, name := range tt.expectedNames {
				if resp.Files[i].Name != name {
					t.Errorf("Position %d: expected %s, got %s", i, name, resp.Files[i].Name)
				}
			}
		})
	}
}

func TestListService_Execute_TotalSize(t *testing.T) {
	client := mocks.NewMockFileClient(
		domain.FileRecord{ID: "1", Name: "a", Size: 1024},
		domain.FileRecord{ID: "2", Name: "b", Size: 512},
	)

	resp, err := NewListService(client).Execute(context.Background(), ListRequest{Limit: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.TotalSize != 1536 {
		t.Errorf("Expected total size 1536, got %d", resp.TotalSize)
	}
}

func TestListService_Execute_ClientError(t *testing.T) {
	client := mocks.NewMockFileClient()
	client.SetListError(fmt.Errorf("connection refused"))

	_, err := NewListService(client).Execute(context.Background(), ListRequest{})
	if err == nil {
		t.Fatal("Expected error but got none")
	}
}

func TestListService_Search(t *testing.T) {
	fixtures := []domain.FileRecord{
		{ID: "a1", Filename: "1700-holiday.png", Name: "holiday.png"},
		{ID: "b2", Filename: "1701-report.pdf", Name: "quarterly report.pdf"},
		{ID: "c3", Filename: "1702-notes.md", Name: "notes.md"},
	}

	tests := []struct {
		name          string
		query         string
		expectedFirst string
		expectedCount int
	}{
		{"exact name", "holiday.png", "holiday.png", 1},
		{"prefix", "hol", "holiday.png", 1},
		{"word boundary subsequence", "qr", "quarterly report.pdf", 1},
		{"stored filename", "1702", "notes.md", 1},
		{"identifier", "b2", "quarterly report.pdf", 1},
		{"case insensitive", "NOTES", "notes.md", 1},
		{"empty query returns all", "", "holiday.png", 3},
		{"no match", "zzz", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewListService(mocks.NewMockFileClient(fixtures...))

			resp, err := service.Search(context.Background(), SearchRequest{Query: tt.query})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if resp.Total != tt.expectedCount {
				t.Errorf("Expected %d results, got %d", tt.expectedCount, resp.Total)
			}
			if tt.expectedCount > 0 && resp.Files[0].Name != tt.expectedFirst {
				t.Errorf("Expected first result %s, got %s", tt.expectedFirst, resp.Files[0].Name)
			}
		})
	}
}

func TestListService_Search_ClientError(t *testing.T) {
	client := mocks.NewMockFileClient()
	wantErr := errors.New("boom")
	client.SetListError(wantErr)

	_, err := NewListService(client).Search(context.Background(), SearchRequest{Query: "x"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected wrapped %v, got %v", wantErr, err)
	}
}

func TestFuzzyMatchScore_PrefersPrefix(t *testing.T) {
	prefix := fuzzyMatchScore("report.pdf", "rep")
	middle := fuzzyMatchScore("old-report.pdf", "rep")
	if prefix <= middle {
		t.Errorf("Expected prefix match (%d) to outscore inner match (%d)", prefix, middle)
	}
}
