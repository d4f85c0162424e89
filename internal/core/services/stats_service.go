package services

import (
	"context"
	"sort"

	"github.com/Tom-Neverwinter/pinlib/internal/core/ports"
)

// StatsService aggregates counts across the active libraries
type StatsService struct {
	repo ports.LibraryRepository
}

// NewStatsService creates a new stats service
func NewStatsService(repo ports.LibraryRepository) *StatsService {
	return &StatsService{repo: repo}
}

// StatsRequest represents a request for library statistics
type StatsRequest struct {
	Paths []string // active library roots
}

// LibraryCount is one library's share of the totals
type LibraryCount struct {
	Name   string
	Count  int
	Locked bool
}

// StatsResponse represents the aggregated statistics
type StatsResponse struct {
	TotalAssets    int
	Libraries      []LibraryCount
	CategoryCounts map[string]int
	TagCounts      map[string]int
	Skipped        int
}

// Execute walks the active libraries and tallies assets, categories,
// and tags. Unreadable libraries are skipped, matching query behavior.
func (s *StatsService) Execute(ctx context.Context, req StatsRequest) (*StatsResponse, error) {
	resp := &StatsResponse{
		CategoryCounts: make(map[string]int),
		TagCounts:      make(map[string]int),
	}

	for _, path := range req.Paths {
		lib, err := s.repo.Load(ctx, path)
		if err != nil {
			resp.Skipped++
			continue
		}

		resp.Libraries = append(resp.Libraries, LibraryCount{
			Name:   lib.Name,
			Count:  lib.Count(),
			Locked: lib.Locked,
		})
		resp.TotalAssets += lib.Count()

		for _, a := range lib.SortedAssets() {
			if a.Category != "" {
				resp.CategoryCounts[a.Category]++
			}
			for _, t := range a.Tags {
				resp.TagCounts[t]++
			}
		}
	}

	return resp, nil
}

// TopTags returns up to limit tags ordered by descending count, then
// name for determinism
func (r *StatsResponse) TopTags(limit int) []string {
	tags := make([]string, 0, len(r.TagCounts))
	for t := range r.TagCounts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if r.TagCounts[tags[i]] != r.TagCounts[tags[j]] {
			return r.TagCounts[tags[i]] > r.TagCounts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}
