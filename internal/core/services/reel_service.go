package services

import (
	"context"
	"time"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/ports"
)

// ReelService drives the score-reel reset sequence: the displayed
// value is advanced by the per-digit rule once per interval until it
// reaches zero. The sequence runs on the calling goroutine; a TUI
// front-end steps the same rule from its frame ticker instead.
type ReelService struct {
	listener ports.ReelListener
}

// NewReelService creates a new reel service
func NewReelService(listener ports.ReelListener) *ReelService {
	return &ReelService{listener: listener}
}

// ResetRequest represents a request to run a reset sequence
type ResetRequest struct {
	From     uint64        // displayed value at sequence start
	Interval time.Duration // pause between steps
}

// ResetResponse represents the completed sequence
type ResetResponse struct {
	Steps    int
	Duration time.Duration
}

// Reset runs the sequence to completion. Started fires before the
// first pause, Pulse after every step, Stopped once the value is zero.
// A value that is already zero emits Started and Stopped with no
// pulses. Cancelling the context abandons the sequence mid-way.
func (s *ReelService) Reset(ctx context.Context, req ResetRequest) (*ResetResponse, error) {
	start := time.Now()
	value := req.From

	s.listener.ResetStarted(value)

	steps := 0
	for value != 0 {
		if req.Interval > 0 {
			timer := time.NewTimer(req.Interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return nil, err
		}

		value = domain.Advance(value)
		steps++
		s.listener.ResetPulse(value)
	}

	s.listener.ResetStopped()

	return &ResetResponse{
		Steps:    steps,
		Duration: time.Since(start),
	}, nil
}
