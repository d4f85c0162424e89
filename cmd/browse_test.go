package cmd

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/ports/mocks"
	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/config"
)

// newTestBrowseModel seeds two libraries into a mock repository, wires
// the package services to it, and returns a model over both
func newTestBrowseModel(t *testing.T) browseModel {
	t.Helper()

	repo := mocks.NewMockLibraryRepository()

	gottlieb := domain.NewLibrary("gottlieb", "/libs/gottlieb")
	for _, tc := range []struct {
		name, category string
		tags           []string
	}{
		{"Chime Unit C", "sound", []string{"em", "chime"}},
		{"Drop Target Bank", "mechanism", []string{"em"}},
		{"Backglass Scan", "artwork", nil},
	} {
		a, err := domain.NewAsset(tc.name, tc.category, "", tc.tags)
		if err != nil {
			t.Fatalf("NewAsset(%s): %v", tc.name, err)
		}
		if err := gottlieb.AddAsset(a); err != nil {
			t.Fatalf("AddAsset(%s): %v", tc.name, err)
		}
	}
	if err := repo.Save(context.Background(), gottlieb); err != nil {
		t.Fatalf("Save: %v", err)
	}

	williams := domain.NewLibrary("williams", "/libs/williams")
	a, err := domain.NewAsset("Bell Recording", "sound", "", nil)
	if err != nil {
		t.Fatalf("NewAsset: %v", err)
	}
	if err := williams.AddAsset(a); err != nil {
		t.Fatalf("AddAsset: %v", err)
	}
	if err := repo.Save(context.Background(), williams); err != nil {
		t.Fatalf("Save: %v", err)
	}

	queryService = services.NewQueryService(repo, nil)
	appConfig = config.DefaultConfig()

	return newBrowseModel(context.Background(), []string{"/libs/gottlieb", "/libs/williams"})
}

func TestBrowseModelInitialization(t *testing.T) {
	m := newTestBrowseModel(t)

	if len(m.matches) != 4 {
		t.Errorf("Expected 4 matches, got %d", len(m.matches))
	}

	if m.cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", m.cursor)
	}

	if m.mode != browseModeList {
		t.Errorf("Expected mode to be browseModeList, got %v", m.mode)
	}

	// Index 0 is the "all categories" slot
	want := []string{"", "artwork", "mechanism", "sound"}
	if len(m.categories) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(m.categories))
	}
	for i, c := range want {
		if m.categories[i] != c {
			t.Errorf("categories[%d] = %q, want %q", i, m.categories[i], c)
		}
	}
}

func TestBrowseNavigationBoundaries(t *testing.T) {
	m := newTestBrowseModel(t)
	m.height = 30

	// Up at the top stays put
	updated, _ := m.updateList(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(browseModel)
	if m.cursor != 0 {
		t.Errorf("Cursor should stay at 0, got %d", m.cursor)
	}

	// Down at the bottom stays put
	m.cursor = len(m.matches) - 1
	updated, _ = m.updateList(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(browseModel)
	if m.cursor != len(m.matches)-1 {
		t.Errorf("Cursor should stay at %d, got %d", len(m.matches)-1, m.cursor)
	}
}

func TestBrowseSearchRequeriesOnKeystroke(t *testing.T) {
	m := newTestBrowseModel(t)
	m.height = 30

	// Enter search mode
	updated, _ := m.updateList(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = updated.(browseModel)
	if m.mode != browseModeSearch {
		t.Fatalf("Expected search mode, got %v", m.mode)
	}

	// Type "bell": the result set shrinks as we go
	for _, r := range "bell" {
		updated, _ = m.updateSearch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(browseModel)
	}

	if len(m.matches) != 1 {
		t.Fatalf("Expected 1 match for 'bell', got %d", len(m.matches))
	}
	if m.matches[0].Asset.Name != "Bell Recording" {
		t.Errorf("Expected 'Bell Recording', got %q", m.matches[0].Asset.Name)
	}

	// Escape clears the query and restores the full set
	updated, _ = m.updateSearch(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(browseModel)
	if m.mode != browseModeList {
		t.Errorf("Expected list mode after escape, got %v", m.mode)
	}
	if len(m.matches) != 4 {
		t.Errorf("Expected 4 matches after clearing, got %d", len(m.matches))
	}
}

func TestBrowseCategoryCycling(t *testing.T) {
	m := newTestBrowseModel(t)
	m.height = 30

	// First cycle selects "artwork"
	updated, _ := m.updateList(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(browseModel)

	if m.categories[m.catIndex] != "artwork" {
		t.Fatalf("Expected category 'artwork', got %q", m.categories[m.catIndex])
	}
	if len(m.matches) != 1 {
		t.Errorf("Expected 1 artwork match, got %d", len(m.matches))
	}

	// Cycling through all categories returns to "all"
	for i := 0; i < len(m.categories)-1; i++ {
		updated, _ = m.updateList(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
		m = updated.(browseModel)
	}
	if m.catIndex != 0 {
		t.Errorf("Expected catIndex back at 0, got %d", m.catIndex)
	}
	if len(m.matches) != 4 {
		t.Errorf("Expected all 4 matches, got %d", len(m.matches))
	}
}

func TestBrowseLibraryCycling(t *testing.T) {
	m := newTestBrowseModel(t)
	m.height = 30

	// First cycle restricts to the first library
	updated, _ := m.updateList(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	m = updated.(browseModel)

	if m.libIndex != 1 {
		t.Fatalf("Expected libIndex 1, got %d", m.libIndex)
	}
	if len(m.matches) != 3 {
		t.Errorf("Expected 3 matches from gottlieb, got %d", len(m.matches))
	}
	for _, match := range m.matches {
		if match.Library != "gottlieb" {
			t.Errorf("Expected only gottlieb matches, got %q", match.Library)
		}
	}

	// Second cycle restricts to the other library
	updated, _ = m.updateList(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	m = updated.(browseModel)
	if len(m.matches) != 1 || m.matches[0].Library != "williams" {
		t.Errorf("Expected the single williams match, got %d matches", len(m.matches))
	}

	// Third cycle restores the full set
	updated, _ = m.updateList(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("L")})
	m = updated.(browseModel)
	if m.libIndex != 0 {
		t.Errorf("Expected libIndex back at 0, got %d", m.libIndex)
	}
	if len(m.matches) != 4 {
		t.Errorf("Expected all 4 matches restored, got %d", len(m.matches))
	}
}

func TestBrowseCursorClampedAfterRequery(t *testing.T) {
	m := newTestBrowseModel(t)
	m.height = 30
	m.cursor = 3

	// A query that narrows to one result must pull the cursor back in
	m.searchInput.SetValue("bell")
	m.applyQuery()

	if len(m.matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(m.matches))
	}
	if m.cursor != 0 {
		t.Errorf("Expected cursor clamped to 0, got %d", m.cursor)
	}
}
