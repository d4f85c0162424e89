package services

import (
	"context"
	"fmt"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/ports"
)

// AssetService handles asset mutations inside a resolved library.
// Every mutation goes through the domain layer, so locked libraries
// reject it before anything touches disk.
type AssetService struct {
	libraries *LibraryService
	repo      ports.LibraryRepository
}

// NewAssetService creates a new asset service
func NewAssetService(libraries *LibraryService, repo ports.LibraryRepository) *AssetService {
	return &AssetService{
		libraries: libraries,
		repo:      repo,
	}
}

// CreateAssetRequest represents a request to create an asset
type CreateAssetRequest struct {
	Library     string
	Name        string
	Category    string
	Description string
	Tags        []string
}

// CreateAssetResponse represents the response from creating an asset
type CreateAssetResponse struct {
	Asset   *domain.Asset
	Library *domain.Library
}

// Create adds a new asset to a library
func (s *AssetService) Create(ctx context.Context, req CreateAssetRequest) (*CreateAssetResponse, error) {
	lib, err := s.libraries.Resolve(ctx, req.Library)
	if err != nil {
		return nil, err
	}

	asset, err := domain.NewAsset(req.Name, req.Category, req.Description, req.Tags)
	if err != nil {
		return nil, err
	}

	if err := lib.AddAsset(asset); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, lib); err != nil {
		return nil, fmt.Errorf("failed to save library: %w", err)
	}

	return &CreateAssetResponse{Asset: asset, Library: lib}, nil
}

// Delete removes an asset from a library
func (s *AssetService) Delete(ctx context.Context, library, asset string) error {
	return s.mutate(ctx, library, func(lib *domain.Library) error {
		return lib.RemoveAsset(asset)
	})
}

// AddTag adds a tag to an asset
func (s *AssetService) AddTag(ctx context.Context, library, asset, tag string) error {
	return s.mutate(ctx, library, func(lib *domain.Library) error {
		return lib.AddTag(asset, tag)
	})
}

// RemoveTag removes a tag from an asset
func (s *AssetService) RemoveTag(ctx context.Context, library, asset, tag string) error {
	return s.mutate(ctx, library, func(lib *domain.Library) error {
		return lib.RemoveTag(asset, tag)
	})
}

// SetAttribute sets an attribute on an asset
func (s *AssetService) SetAttribute(ctx context.Context, library, asset, key, value string) error {
	return s.mutate(ctx, library, func(lib *domain.Library) error {
		return lib.SetAttribute(asset, key, value)
	})
}

// RemoveAttribute removes an attribute from an asset
func (s *AssetService) RemoveAttribute(ctx context.Context, library, asset, key string) error {
	return s.mutate(ctx, library, func(lib *domain.Library) error {
		return lib.RemoveAttribute(asset, key)
	})
}

// AddLink attaches a named link to an asset
func (s *AssetService) AddLink(ctx context.Context, library, asset, name, url string) error {
	return s.mutate(ctx, library, func(lib *domain.Library) error {
		return lib.AddLink(asset, name, url)
	})
}

// Get retrieves a single asset by library and name
func (s *AssetService) Get(ctx context.Context, library, asset string) (*domain.Asset, error) {
	lib, err := s.libraries.Resolve(ctx, library)
	if err != nil {
		return nil, err
	}
	a, ok := lib.Asset(asset)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, asset)
	}
	return a, nil
}

// mutate resolves a library, applies one mutation, and saves. The save
// only happens when the mutation passed the lock check.
func (s *AssetService) mutate(ctx context.Context, library string, op func(*domain.Library) error) error {
	lib, err := s.libraries.Resolve(ctx, library)
	if err != nil {
		return err
	}
	if err := op(lib); err != nil {
		return err
	}
	return s.repo.Save(ctx, lib)
}
