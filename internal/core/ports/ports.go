package ports

import (
	"context"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
)

// LibraryRepository defines the port for library persistence operations
type LibraryRepository interface {
	// Load reads the library rooted at the given path
	Load(ctx context.Context, path string) (*domain.Library, error)

	// Save persists a library to its root path
	Save(ctx context.Context, lib *domain.Library) error

	// Exists checks if a library file is present at the given path
	Exists(path string) bool
}

// ReelListener receives reset-sequence notifications from the reel
// driver: one Started per sequence, one Pulse per step, one Stopped
// when the displayed value reaches zero.
type ReelListener interface {
	ResetStarted(from uint64)
	ResetPulse(value uint64)
	ResetStopped()
}
