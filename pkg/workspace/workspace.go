package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Workspace represents the managed storage directory for pinlib
type Workspace struct {
	RootPath     string
	CachePath    string
	ConfigPath   string
	RegistryPath string
}

// New creates a new Workspace instance with XDG-compliant paths
func New() (*Workspace, error) {
	rootPath, rootErr := getWorkspaceRoot()
	configPath, configErr := getConfigPath()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine workspace root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Workspace{
		RootPath:     rootPath,
		CachePath:    filepath.Join(rootPath, "cache"),
		ConfigPath:   configPath,
		RegistryPath: filepath.Join(rootPath, "libraries.yaml"),
	}, nil
}

// getWorkspaceRoot returns the workspace root directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getWorkspaceRoot() (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "pinlib"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "pinlib"), nil
	}

	return filepath.Join(homeDir, ".local", "share", "pinlib"), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pinlib", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "pinlib-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "pinlib", "config.yaml"), nil
}

// Initialize creates the workspace directory structure if it doesn't exist
func (w *Workspace) Initialize() error {
	directories := []string{
		w.RootPath,
		w.CachePath,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(w.RegistryPath); os.IsNotExist(err) {
		if err := w.SaveRegistry(&Registry{}); err != nil {
			return fmt.Errorf("failed to create registry: %w", err)
		}
	}

	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.RootPath)
	return err == nil && info.IsDir()
}

// LibraryEntry is one registered library in the workspace registry
type LibraryEntry struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Active bool   `yaml:"active"`
}

// Registry is the ordered set of registered libraries. The order is
// the enumeration order used for query results.
type Registry struct {
	Libraries []LibraryEntry `yaml:"libraries"`
}

// Find returns the entry with the given name, case-insensitively
func (r *Registry) Find(name string) (*LibraryEntry, bool) {
	for i := range r.Libraries {
		if strings.EqualFold(r.Libraries[i].Name, name) {
			return &r.Libraries[i], true
		}
	}
	return nil, false
}

// Add registers a library; names must be unique
func (r *Registry) Add(name, path string) error {
	if _, exists := r.Find(name); exists {
		return fmt.Errorf("library '%s' is already registered", name)
	}
	r.Libraries = append(r.Libraries, LibraryEntry{
		Name:   name,
		Path:   path,
		Active: true,
	})
	return nil
}

// Remove unregisters a library by name
func (r *Registry) Remove(name string) error {
	for i := range r.Libraries {
		if strings.EqualFold(r.Libraries[i].Name, name) {
			r.Libraries = append(r.Libraries[:i], r.Libraries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("library '%s' is not registered", name)
}

// SetActive toggles a library in or out of the active set. The entry
// stays registered either way, so re-enabling never duplicates it.
func (r *Registry) SetActive(name string, active bool) error {
	entry, ok := r.Find(name)
	if !ok {
		return fmt.Errorf("library '%s' is not registered", name)
	}
	entry.Active = active
	return nil
}

// Active returns the active entries in registration order
func (r *Registry) Active() []LibraryEntry {
	var active []LibraryEntry
	for _, entry := range r.Libraries {
		if entry.Active {
			active = append(active, entry)
		}
	}
	return active
}

// ActivePaths returns the root paths of active libraries in order
func (r *Registry) ActivePaths() []string {
	var paths []string
	for _, entry := range r.Active() {
		paths = append(paths, entry.Path)
	}
	return paths
}

// LoadRegistry reads the library registry from disk. A missing file
// yields an empty registry.
func (w *Workspace) LoadRegistry() (*Registry, error) {
	data, err := os.ReadFile(w.RegistryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{}, nil
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	return &reg, nil
}

// SaveRegistry writes the library registry to disk
func (w *Workspace) SaveRegistry(reg *Registry) error {
	if err := os.MkdirAll(filepath.Dir(w.RegistryPath), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	data, err := yaml.Marshal(reg)
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.WriteFile(w.RegistryPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return nil
}
