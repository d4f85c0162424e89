package services

import (
	"context"
	"fmt"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/ports"
	"github.com/Tom-Neverwinter/pinlib/pkg/workspace"
)

// LibraryService manages the workspace registry and library flags
type LibraryService struct {
	ws   *workspace.Workspace
	repo ports.LibraryRepository
}

// NewLibraryService creates a new library service
func NewLibraryService(ws *workspace.Workspace, repo ports.LibraryRepository) *LibraryService {
	return &LibraryService{
		ws:   ws,
		repo: repo,
	}
}

// RegisterRequest represents a request to register a library
type RegisterRequest struct {
	Name string
	Path string
}

// RegisterResponse represents the response from registering
type RegisterResponse struct {
	Library *domain.Library
	Created bool // false when an existing library file was adopted
}

// Register adds a library to the registry, creating its file on disk
// if the path holds none yet
func (s *LibraryService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if err := domain.ValidateLibraryName(req.Name); err != nil {
		return nil, err
	}

	reg, err := s.ws.LoadRegistry()
	if err != nil {
		return nil, err
	}

	if err := reg.Add(req.Name, req.Path); err != nil {
		return nil, err
	}

	var lib *domain.Library
	created := false
	if s.repo.Exists(req.Path) {
		lib, err = s.repo.Load(ctx, req.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to adopt existing library: %w", err)
		}
	} else {
		lib = domain.NewLibrary(req.Name, req.Path)
		if err := s.repo.Save(ctx, lib); err != nil {
			return nil, err
		}
		created = true
	}

	if err := s.ws.SaveRegistry(reg); err != nil {
		return nil, err
	}

	return &RegisterResponse{Library: lib, Created: created}, nil
}

// Unregister removes a library from the registry. The library file on
// disk is left untouched.
func (s *LibraryService) Unregister(ctx context.Context, name string) error {
	reg, err := s.ws.LoadRegistry()
	if err != nil {
		return err
	}
	if err := reg.Remove(name); err != nil {
		return err
	}
	return s.ws.SaveRegistry(reg)
}

// SetActive toggles a library in or out of the active query set
func (s *LibraryService) SetActive(ctx context.Context, name string, active bool) error {
	reg, err := s.ws.LoadRegistry()
	if err != nil {
		return err
	}
	if err := reg.SetActive(name, active); err != nil {
		return err
	}
	return s.ws.SaveRegistry(reg)
}

// SetLocked sets the locked flag on a library. Unlocking a locked
// library is the one mutation the lock does not guard.
func (s *LibraryService) SetLocked(ctx context.Context, name string, locked bool) error {
	lib, err := s.Resolve(ctx, name)
	if err != nil {
		return err
	}
	lib.Locked = locked
	return s.repo.Save(ctx, lib)
}

// Resolve loads a registered library by name
func (s *LibraryService) Resolve(ctx context.Context, name string) (*domain.Library, error) {
	reg, err := s.ws.LoadRegistry()
	if err != nil {
		return nil, err
	}
	entry, ok := reg.Find(name)
	if !ok {
		return nil, fmt.Errorf("library '%s' is not registered", name)
	}
	return s.repo.Load(ctx, entry.Path)
}

// Entries returns all registry entries in registration order
func (s *LibraryService) Entries(ctx context.Context) ([]workspace.LibraryEntry, error) {
	reg, err := s.ws.LoadRegistry()
	if err != nil {
		return nil, err
	}
	return reg.Libraries, nil
}

// ActivePaths returns the root paths of active libraries in order
func (s *LibraryService) ActivePaths(ctx context.Context) ([]string, error) {
	reg, err := s.ws.LoadRegistry()
	if err != nil {
		return nil, err
	}
	return reg.ActivePaths(), nil
}
