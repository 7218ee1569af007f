package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/ports"
)

// ListService handles one-shot listing and searching of uploaded files
type ListService struct {
	client ports.FileClient
}

// NewListService creates a new list service
func NewListService(client ports.FileClient) *ListService {
	return &ListService{
		client: client,
	}
}

// ListRequest represents a request to list files
type ListRequest struct {
	Query   string           // Substring filter on the display name (optional)
	SortBy  domain.SortField // Empty keeps server order
	Reverse bool             // Flip the column's default direction
	Limit   int              // 0 means no limit
}

// ListResponse represents the response from listing files
type ListResponse struct {
	Files     []domain.FileRecord
	Total     int // matches before Limit
	TotalSize int64
}

// Execute lists files with optional filtering, sorting and a row limit
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	records, err := s.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	records = domain.FilterByName(records, req.Query)

	if req.SortBy != "" {
		spec := domain.SortSpec{Field: req.SortBy, Direction: domain.DefaultDirection(req.SortBy)}
		if req.Reverse {
			spec = domain.Toggle(&spec, req.SortBy)
		}
		records = domain.SortRecords(records, spec)
	}

	resp := &ListResponse{Total: len(records)}
	for _, r := range records {
		resp.TotalSize += r.Size
	}

	if req.Limit > 0 && len(records) > req.Limit {
		records = records[:req.Limit]
	}
	resp.Files = records

	return resp, nil
}

// SearchRequest represents a search query
type SearchRequest struct {
	Query string
}

// SearchResponse represents search results, best match first
type SearchResponse struct {
	Files []domain.FileRecord
	Total int
}

// Search performs fuzzy search on file names
func (s *ListService) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	records, err := s.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	// If no query, return all
	if strings.TrimSpace(req.Query) == "" {
		return &SearchResponse{
			Files: records,
			Total: len(records),
		}, nil
	}

	matches := FuzzySearch(records, req.Query)

	return &SearchResponse{
		Files: matches,
		Total: len(matches),
	}, nil
}

// fuzzyMatch represents a scored match
type fuzzyMatch struct {
	record domain.FileRecord
	score  int
}

// FuzzySearch ranks records by how well query matches the display name,
// then the stored filename, then the identifier.
func FuzzySearch(records []domain.FileRecord, query string) []domain.FileRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}

	var matches []fuzzyMatch

	for _, record := range records {
		if score := fuzzyMatchScore(record.Name, query); score > 0 {
			matches = append(matches, fuzzyMatch{record: record, score: score + 1000})
			continue
		}

		if score := fuzzyMatchScore(record.Filename, query); score > 0 {
			matches = append(matches, fuzzyMatch{record: record, score: score + 500})
			continue
		}

		if score := fuzzyMatchScore(record.ID, query); score > 0 {
			matches = append(matches, fuzzyMatch{record: record, score: score + 200})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]domain.FileRecord, len(matches))
	for i, m := range matches {
		result[i] = m.record
	}

	return result
}

// fuzzyMatchScore calculates a score for fuzzy matching query against text.
// Returns 0 if no match, higher scores for better matches.
func fuzzyMatchScore(text, query string) int {
	if text == "" || query == "" {
		return 0
	}

	textLower := strings.ToLower(text)
	queryLower := strings.ToLower(query)

	if text == query {
		return 10000
	}

	if textLower == queryLower {
		return 9000
	}

	if strings.Contains(textLower, queryLower) {
		score := 5000
		if strings.HasPrefix(textLower, queryLower) {
			score += 2000
		}
		return score
	}

	// character-by-character subsequence
	score := 0
	textRunes := []rune(textLower)
	queryRunes := []rune(queryLower)

	queryIdx := 0
	consecutive := 0
	lastMatchIdx := -1

	for textIdx := 0; textIdx < len(textRunes) && queryIdx < len(queryRunes); textIdx++ {
		if textRunes[textIdx] != queryRunes[queryIdx] {
			continue
		}

		score += 100

		if textIdx == lastMatchIdx+1 {
			consecutive++
			score += consecutive * 50
		} else {
			consecutive = 0
		}

		if textIdx == 0 || isNameBoundary(textRunes[textIdx-1]) {
			score += 200
		}
		if textIdx == 0 {
			score += 300
		}

		lastMatchIdx = textIdx
		queryIdx++
	}

	if queryIdx != len(queryRunes) {
		return 0
	}

	// gaps between matched characters
	if lastMatchIdx >= 0 {
		span := lastMatchIdx + 1
		score -= (span - len(queryRunes)) * 10
	}

	return score
}

func isNameBoundary(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.'
}
