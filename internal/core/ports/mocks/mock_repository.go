package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
)

// MockLibraryRepository is an in-memory implementation of the
// LibraryRepository interface for testing
type MockLibraryRepository struct {
	mu        sync.RWMutex
	libraries map[string]*domain.Library
	failures  map[string]error
}

// NewMockLibraryRepository creates a new mock repository
func NewMockLibraryRepository() *MockLibraryRepository {
	return &MockLibraryRepository{
		libraries: make(map[string]*domain.Library),
		failures:  make(map[string]error),
	}
}

// FailPath makes Load return err for the given path
func (m *MockLibraryRepository) FailPath(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[path] = err
}

// Load reads the library rooted at path
func (m *MockLibraryRepository) Load(ctx context.Context, path string) (*domain.Library, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.failures[path]; ok {
		return nil, err
	}

	lib, ok := m.libraries[path]
	if !ok {
		return nil, fmt.Errorf("library not found: %s", path)
	}
	return lib, nil
}

// Save persists a library keyed by its root path
func (m *MockLibraryRepository) Save(ctx context.Context, lib *domain.Library) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failures[lib.Path]; ok {
		return err
	}

	m.libraries[lib.Path] = lib
	return nil
}

// Exists checks if a library was saved at path
func (m *MockLibraryRepository) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.libraries[path]
	return ok
}
