package workspace

import (
	"path/filepath"
	"testing"
)

func testWorkspace(t *testing.T) *Workspace {
	t.Helper()
	root := t.TempDir()
	return &Workspace{
		RootPath:     root,
		CachePath:    filepath.Join(root, "cache"),
		ConfigPath:   filepath.Join(root, "config.yaml"),
		RegistryPath: filepath.Join(root, "libraries.yaml"),
	}
}

func TestWorkspaceInitialize(t *testing.T) {
	ws := testWorkspace(t)

	if err := ws.Initialize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ws.Exists() {
		t.Error("expected workspace to exist after initialize")
	}

	reg, err := ws.LoadRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reg.Libraries) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(reg.Libraries))
	}
}

func TestRegistryAdd(t *testing.T) {
	reg := &Registry{}

	if err := reg.Add("stock", "/tables/stock"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Add("custom", "/tables/custom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Duplicate names rejected, case-insensitively
	if err := reg.Add("STOCK", "/elsewhere"); err == nil {
		t.Error("expected error registering duplicate name")
	}

	if len(reg.Libraries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(reg.Libraries))
	}
}

func TestRegistryToggleIdempotent(t *testing.T) {
	reg := &Registry{}
	if err := reg.Add("stock", "/tables/stock"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := reg.SetActive("stock", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reg.Active()) != 0 {
		t.Errorf("expected no active libraries, got %d", len(reg.Active()))
	}

	// Toggling off then on restores the entry without duplication
	if err := reg.SetActive("stock", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.SetActive("stock", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reg.Libraries) != 1 {
		t.Errorf("expected 1 registered entry, got %d", len(reg.Libraries))
	}
	if len(reg.Active()) != 1 {
		t.Errorf("expected 1 active entry, got %d", len(reg.Active()))
	}

	if err := reg.SetActive("missing", true); err == nil {
		t.Error("expected error toggling unregistered library")
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	ws := testWorkspace(t)

	reg := &Registry{}
	if err := reg.Add("stock", "/tables/stock"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Add("custom", "/tables/custom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.SetActive("custom", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ws.SaveRegistry(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := ws.LoadRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(loaded.Libraries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded.Libraries))
	}
	paths := loaded.ActivePaths()
	if len(paths) != 1 || paths[0] != "/tables/stock" {
		t.Errorf("expected active paths [/tables/stock], got %v", paths)
	}
}

func TestRegistryRemove(t *testing.T) {
	reg := &Registry{}
	if err := reg.Add("stock", "/tables/stock"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := reg.Remove("stock"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reg.Libraries) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(reg.Libraries))
	}

	if err := reg.Remove("stock"); err == nil {
		t.Error("expected error removing unknown library")
	}
}
