package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tom-Neverwinter/pinlib/internal/core/ports/mocks"
	"github.com/Tom-Neverwinter/pinlib/pkg/workspace"
)

func testWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	root := t.TempDir()
	ws := &workspace.Workspace{
		RootPath:     root,
		CachePath:    filepath.Join(root, "cache"),
		ConfigPath:   filepath.Join(root, "config.yaml"),
		RegistryPath: filepath.Join(root, "libraries.yaml"),
	}
	if err := ws.Initialize(); err != nil {
		t.Fatalf("failed to initialize workspace: %v", err)
	}
	return ws
}

func TestLibraryService_Register(t *testing.T) {
	ctx := context.Background()
	ws := testWorkspace(t)
	repo := mocks.NewMockLibraryRepository()
	svc := NewLibraryService(ws, repo)

	resp, err := svc.Register(ctx, RegisterRequest{Name: "stock", Path: "/tables/stock"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Created {
		t.Error("expected a fresh library file to be created")
	}
	if !repo.Exists("/tables/stock") {
		t.Error("expected library to be saved through the repository")
	}

	// Names must stay unique
	if _, err := svc.Register(ctx, RegisterRequest{Name: "stock", Path: "/elsewhere"}); err == nil {
		t.Error("expected error registering duplicate name")
	}

	// Invalid names rejected before touching the registry
	if _, err := svc.Register(ctx, RegisterRequest{Name: "///", Path: "/x"}); err == nil {
		t.Error("expected error for invalid library name")
	}

	entries, err := svc.Entries(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 registry entry, got %d", len(entries))
	}
}

func TestLibraryService_RegisterAdoptsExisting(t *testing.T) {
	ctx := context.Background()
	ws := testWorkspace(t)
	repo := mocks.NewMockLibraryRepository()
	seedLibrary(t, repo, "imported", "/tables/imported",
		seedAsset(t, "Pop Bumper", "Playfield", "", nil))

	svc := NewLibraryService(ws, repo)
	resp, err := svc.Register(ctx, RegisterRequest{Name: "imported", Path: "/tables/imported"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Created {
		t.Error("expected existing library file to be adopted, not recreated")
	}
	if resp.Library.Count() != 1 {
		t.Errorf("expected adopted library to keep its assets, got %d", resp.Library.Count())
	}
}

func TestLibraryService_ToggleActive(t *testing.T) {
	ctx := context.Background()
	ws := testWorkspace(t)
	repo := mocks.NewMockLibraryRepository()
	svc := NewLibraryService(ws, repo)

	for _, name := range []string{"stock", "custom"} {
		if _, err := svc.Register(ctx, RegisterRequest{Name: name, Path: "/tables/" + name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := svc.SetActive(ctx, "custom", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	paths, err := svc.ActivePaths(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/tables/stock" {
		t.Errorf("expected only stock active, got %v", paths)
	}

	// Off then on restores without duplication
	if err := svc.SetActive(ctx, "custom", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	paths, err = svc.ActivePaths(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("expected 2 active paths, got %v", paths)
	}
	entries, _ := svc.Entries(ctx)
	if len(entries) != 2 {
		t.Errorf("expected 2 registry entries after toggle cycle, got %d", len(entries))
	}
}

func TestLibraryService_SetLocked(t *testing.T) {
	ctx := context.Background()
	ws := testWorkspace(t)
	repo := mocks.NewMockLibraryRepository()
	svc := NewLibraryService(ws, repo)

	if _, err := svc.Register(ctx, RegisterRequest{Name: "stock", Path: "/tables/stock"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.SetLocked(ctx, "stock", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lib, err := svc.Resolve(ctx, "stock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lib.Locked {
		t.Error("expected library to be locked")
	}

	// Unlocking must work even though the library is locked
	if err := svc.SetLocked(ctx, "stock", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lib, _ = svc.Resolve(ctx, "stock")
	if lib.Locked {
		t.Error("expected library to be unlocked")
	}
}

func TestLibraryService_Unregister(t *testing.T) {
	ctx := context.Background()
	ws := testWorkspace(t)
	repo := mocks.NewMockLibraryRepository()
	svc := NewLibraryService(ws, repo)

	if _, err := svc.Register(ctx, RegisterRequest{Name: "stock", Path: "/tables/stock"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Unregister(ctx, "stock"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The library file stays on disk; only the registry entry goes
	if !repo.Exists("/tables/stock") {
		t.Error("expected library file to survive unregistering")
	}
	if _, err := svc.Resolve(ctx, "stock"); err == nil {
		t.Error("expected resolve to fail after unregistering")
	}
}
