package services

import (
	"context"
	"testing"
	"time"
)

// recordingListener captures the notification sequence for assertions
type recordingListener struct {
	started []uint64
	pulses  []uint64
	stopped int
}

func (l *recordingListener) ResetStarted(from uint64) { l.started = append(l.started, from) }
func (l *recordingListener) ResetPulse(value uint64)  { l.pulses = append(l.pulses, value) }
func (l *recordingListener) ResetStopped()            { l.stopped++ }

func TestReelService_Reset(t *testing.T) {
	tests := []struct {
		name           string
		from           uint64
		expectedPulses []uint64
	}{
		{
			name:           "already zero",
			from:           0,
			expectedPulses: nil,
		},
		{
			name:           "single digit climbs and rolls",
			from:           7,
			expectedPulses: []uint64{8, 9, 0},
		},
		{
			name:           "nine rolls immediately",
			from:           9,
			expectedPulses: []uint64{0},
		},
		{
			name:           "per digit without carry",
			from:           18,
			expectedPulses: []uint64{29, 30, 40, 50, 60, 70, 80, 90, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listener := &recordingListener{}
			svc := NewReelService(listener)

			resp, err := svc.Reset(context.Background(), ResetRequest{
				From:     tt.from,
				Interval: time.Microsecond,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(listener.started) != 1 || listener.started[0] != tt.from {
				t.Errorf("expected one Started(%d), got %v", tt.from, listener.started)
			}
			if listener.stopped != 1 {
				t.Errorf("expected one Stopped, got %d", listener.stopped)
			}

			if resp.Steps != len(tt.expectedPulses) {
				t.Errorf("expected %d steps, got %d", len(tt.expectedPulses), resp.Steps)
			}
			if len(listener.pulses) != len(tt.expectedPulses) {
				t.Fatalf("expected pulses %v, got %v", tt.expectedPulses, listener.pulses)
			}
			for i, want := range tt.expectedPulses {
				if listener.pulses[i] != want {
					t.Errorf("pulse %d: expected %d, got %d", i, want, listener.pulses[i])
				}
			}

			if len(listener.pulses) > 0 && listener.pulses[len(listener.pulses)-1] != 0 {
				t.Error("sequence must end at zero")
			}
		})
	}
}

func TestReelService_ResetCancellation(t *testing.T) {
	listener := &recordingListener{}
	svc := NewReelService(listener)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Reset(ctx, ResetRequest{From: 500, Interval: time.Hour}); err == nil {
		t.Error("expected cancellation error")
	}
	if listener.stopped != 0 {
		t.Error("abandoned sequence must not emit Stopped")
	}
}
