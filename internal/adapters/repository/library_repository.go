package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/ports"
)

// libraryFile is the name of the metadata file at each library root
const libraryFile = "library.yaml"

// LibraryRepository persists libraries as YAML files at their roots
type LibraryRepository struct {
	mu sync.RWMutex
}

// NewLibraryRepository creates a new file-based library repository
func NewLibraryRepository() *LibraryRepository {
	return &LibraryRepository{}
}

// Ensure it implements the interface
var _ ports.LibraryRepository = (*LibraryRepository)(nil)

// FilePath returns the metadata file path for a library root
func FilePath(root string) string {
	return filepath.Join(root, libraryFile)
}

// Load reads the library rooted at path
func (r *LibraryRepository) Load(ctx context.Context, path string) (*domain.Library, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(FilePath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var lib domain.Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse library file: %w", err)
	}

	// Path is not serialized; it is wherever the file was found
	lib.Path = path
	if lib.Assets == nil {
		lib.Assets = make(map[string]*domain.Asset)
	}

	return &lib, nil
}

// Save writes a library to its root path
func (r *LibraryRepository) Save(ctx context.Context, lib *domain.Library) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lib.Path == "" {
		return fmt.Errorf("library '%s' has no root path", lib.Name)
	}

	if err := os.MkdirAll(lib.Path, 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	data, err := yaml.Marshal(lib)
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}

	if err := os.WriteFile(FilePath(lib.Path), data, 0644); err != nil {
		return fmt.Errorf("failed to write library file: %w", err)
	}
	return nil
}

// Exists checks if a library file is present at the given path
func (r *LibraryRepository) Exists(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, err := os.Stat(FilePath(path))
	return err == nil
}
