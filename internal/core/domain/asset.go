package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Asset represents the metadata record for a single table asset
// (playfield art, sound sample, reel face, toy mesh, ...) in a library.
type Asset struct {
	Name        string            `yaml:"name"`
	Category    string            `yaml:"category"`
	Description string            `yaml:"description,omitempty"`
	Attributes  map[string]string `yaml:"attributes,omitempty"`
	Tags        []string          `yaml:"tags,omitempty"`
	Links       []Link            `yaml:"links,omitempty"`
	CreatedAt   time.Time         `yaml:"created_at"`
}

// Link is a named external reference attached to an asset
// (manufacturer page, IPDB entry, source recording, ...).
type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// ValidateAssetName checks if an asset name is valid
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("asset name cannot be empty")
	}

	if len(name) > 200 {
		return fmt.Errorf("asset name too long (max 200 characters)")
	}

	return nil
}

// ValidateLibraryName checks if a library name is valid
func ValidateLibraryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("library name cannot be empty")
	}

	reg := regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)
	if !reg.MatchString(name) {
		return fmt.Errorf("library name contains invalid characters")
	}

	return nil
}

// NewAsset creates a new asset record with the creation timestamp set
func NewAsset(name, category, description string, tags []string) (*Asset, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []string{}
	}

	return &Asset{
		Name:        name,
		Category:    category,
		Description: description,
		Attributes:  make(map[string]string),
		Tags:        tags,
		CreatedAt:   time.Now(),
	}, nil
}

// HasTag checks if the asset carries a specific tag
func (a *Asset) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Attribute looks up an attribute value by key, case-insensitively
func (a *Asset) Attribute(key string) (string, bool) {
	for k, v := range a.Attributes {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// MatchesAttribute reports whether the asset carries the key and any of
// its comma-separated value parts equals want, case-insensitively.
// Attribute values hold multi-value lists ("Bally,Williams"), so a
// constraint is satisfied by any single part.
func (a *Asset) MatchesAttribute(key, want string) bool {
	value, ok := a.Attribute(key)
	if !ok {
		return false
	}
	for _, part := range strings.Split(value, ",") {
		if strings.EqualFold(strings.TrimSpace(part), want) {
			return true
		}
	}
	return false
}

// GetTagsString returns tags as a comma-separated string
func (a *Asset) GetTagsString() string {
	if len(a.Tags) == 0 {
		return "-"
	}
	return strings.Join(a.Tags, ", ")
}

// GetDisplayDate returns a human-readable creation date
func (a *Asset) GetDisplayDate() string {
	if a.CreatedAt.IsZero() {
		return "-"
	}
	return a.CreatedAt.Format("Jan 02, 2006")
}
