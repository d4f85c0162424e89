package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrLibraryLocked is returned for any mutation on a locked library
	ErrLibraryLocked = errors.New("library is locked")

	// ErrAssetNotFound is returned when an asset name resolves to nothing
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetExists is returned when adding an asset whose name is taken
	ErrAssetExists = errors.New("asset already exists")
)

// Library is a named collection of assets rooted at a filesystem path.
// The Locked flag guards every mutation; a locked library can still be
// read and queried.
type Library struct {
	Name   string            `yaml:"name"`
	Path   string            `yaml:"-"`
	Locked bool              `yaml:"locked"`
	Assets map[string]*Asset `yaml:"assets"`
}

// NewLibrary creates an empty library rooted at path
func NewLibrary(name, path string) *Library {
	return &Library{
		Name:   name,
		Path:   path,
		Assets: make(map[string]*Asset),
	}
}

// Count returns the number of assets in the library
func (l *Library) Count() int {
	return len(l.Assets)
}

// Asset retrieves an asset by name, case-insensitively
func (l *Library) Asset(name string) (*Asset, bool) {
	if a, ok := l.Assets[name]; ok {
		return a, true
	}
	for k, a := range l.Assets {
		if strings.EqualFold(k, name) {
			return a, true
		}
	}
	return nil, false
}

// AddAsset adds an asset to the library
func (l *Library) AddAsset(a *Asset) error {
	if l.Locked {
		return ErrLibraryLocked
	}
	if _, ok := l.Asset(a.Name); ok {
		return fmt.Errorf("%w: %s", ErrAssetExists, a.Name)
	}
	if l.Assets == nil {
		l.Assets = make(map[string]*Asset)
	}
	l.Assets[a.Name] = a
	return nil
}

// RemoveAsset removes an asset by name
func (l *Library) RemoveAsset(name string) error {
	if l.Locked {
		return ErrLibraryLocked
	}
	a, ok := l.Asset(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	delete(l.Assets, a.Name)
	return nil
}

// SetAttribute sets or replaces an attribute on an asset
func (l *Library) SetAttribute(assetName, key, value string) error {
	if l.Locked {
		return ErrLibraryLocked
	}
	a, ok := l.Asset(assetName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, assetName)
	}
	if a.Attributes == nil {
		a.Attributes = make(map[string]string)
	}
	a.Attributes[key] = value
	return nil
}

// RemoveAttribute deletes an attribute from an asset
func (l *Library) RemoveAttribute(assetName, key string) error {
	if l.Locked {
		return ErrLibraryLocked
	}
	a, ok := l.Asset(assetName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, assetName)
	}
	for k := range a.Attributes {
		if strings.EqualFold(k, key) {
			delete(a.Attributes, k)
		}
	}
	return nil
}

// AddTag adds a tag to an asset; adding an existing tag is a no-op
func (l *Library) AddTag(assetName, tag string) error {
	if l.Locked {
		return ErrLibraryLocked
	}
	a, ok := l.Asset(assetName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, assetName)
	}
	if !a.HasTag(tag) {
		a.Tags = append(a.Tags, tag)
	}
	return nil
}

// RemoveTag removes a tag from an asset
func (l *Library) RemoveTag(assetName, tag string) error {
	if l.Locked {
		return ErrLibraryLocked
	}
	a, ok := l.Asset(assetName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, assetName)
	}
	var tags []string
	for _, t := range a.Tags {
		if !strings.EqualFold(t, tag) {
			tags = append(tags, t)
		}
	}
	a.Tags = tags
	return nil
}

// AddLink attaches a named link to an asset
func (l *Library) AddLink(assetName, linkName, url string) error {
	if l.Locked {
		return ErrLibraryLocked
	}
	a, ok := l.Asset(assetName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, assetName)
	}
	a.Links = append(a.Links, Link{Name: linkName, URL: url})
	return nil
}

// Categories returns the sorted set of categories present in the library
func (l *Library) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, a := range l.Assets {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		cats = append(cats, a.Category)
	}
	sort.Strings(cats)
	return cats
}

// SortedAssets returns assets ordered by name for deterministic listing
func (l *Library) SortedAssets() []*Asset {
	names := make([]string, 0, len(l.Assets))
	for name := range l.Assets {
		names = append(names, name)
	}
	sort.Strings(names)

	assets := make([]*Asset, 0, len(names))
	for _, name := range names {
		assets = append(assets, l.Assets[name])
	}
	return assets
}

// Search returns the library's matches for a query, restricted to the
// selected categories when any are given. Matches carry the library's
// relevance score; lower scores rank higher.
func (l *Library) Search(q Query, categories []string) []Match {
	var matches []Match
	for _, a := range l.SortedAssets() {
		if len(categories) > 0 && !containsFold(categories, a.Category) {
			continue
		}
		score, ok := q.Score(a)
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Library:   l.Name,
			Asset:     a,
			Relevance: score,
		})
	}
	return matches
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
