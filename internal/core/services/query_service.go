package services

import (
	"context"
	"io"
	"log"
	"sort"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/ports"
)

// QueryService parses search strings and runs them across the active
// libraries. Recomputation is synchronous and full: every call
// re-derives the result set from the current library state.
type QueryService struct {
	repo   ports.LibraryRepository
	logger *log.Logger
}

// NewQueryService creates a new query service. Per-library failures
// are logged to logWriter and do not fail the query.
func NewQueryService(repo ports.LibraryRepository, logWriter io.Writer) *QueryService {
	if logWriter == nil {
		logWriter = io.Discard
	}
	return &QueryService{
		repo:   repo,
		logger: log.New(logWriter, "", log.LstdFlags),
	}
}

// QueryRequest represents one query over the active library set
type QueryRequest struct {
	Raw        string   // free-text search string
	Categories []string // selected categories; empty means all
	Paths      []string // active library roots, in enumeration order
}

// QueryResponse represents the computed result set
type QueryResponse struct {
	Query   domain.Query
	Results []domain.Match
	Total   int
	Skipped int // libraries that failed to load
}

// Execute parses the raw string and filters every active library.
// Results are concatenated in library enumeration order and sorted
// ascending by relevance; the stable sort keeps ties in library order.
// A library that fails to load is logged and contributes zero results.
func (s *QueryService) Execute(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	query := domain.ParseQuery(req.Raw)

	var results []domain.Match
	skipped := 0
	for _, path := range req.Paths {
		lib, err := s.repo.Load(ctx, path)
		if err != nil {
			s.logger.Printf("skipping library at %s: %v", path, err)
			skipped++
			continue
		}
		results = append(results, lib.Search(query, req.Categories)...)
	}

	domain.SortMatches(results)

	return &QueryResponse{
		Query:   query,
		Results: results,
		Total:   len(results),
		Skipped: skipped,
	}, nil
}

// Categories returns the sorted union of categories across the given
// libraries, for building category filter toggles
func (s *QueryService) Categories(ctx context.Context, paths []string) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, path := range paths {
		lib, err := s.repo.Load(ctx, path)
		if err != nil {
			continue
		}
		for _, c := range lib.Categories() {
			if !seen[c] {
				seen[c] = true
				cats = append(cats, c)
			}
		}
	}
	sort.Strings(cats)
	return cats
}
