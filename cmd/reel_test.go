package cmd

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
)

func newTestReelModel(score, wheels int) reelModel {
	bank := domain.NewReelBank(wheels)
	bank.SetScore(score)
	return reelModel{
		bank:     bank,
		interval: time.Millisecond,
		score:    score,
	}
}

func TestReelResetReachesZero(t *testing.T) {
	m := newTestReelModel(18, 4)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = updated.(reelModel)

	if !m.running {
		t.Fatal("Expected reset to be running")
	}
	if cmd == nil {
		t.Fatal("Expected a tick command")
	}

	// Feed pulses until the sequence stops
	for i := 0; m.running; i++ {
		if i > 20 {
			t.Fatal("Reset did not terminate")
		}
		updated, _ = m.Update(reelPulseMsg{})
		m = updated.(reelModel)
	}

	if !m.finished {
		t.Error("Expected finished after reset")
	}
	if m.bank.Value() != 0 {
		t.Errorf("Expected value 0 after reset, got %d", m.bank.Value())
	}
	// 18 -> 29 -> 30 -> 40 -> ... -> 90 -> 0 is 9 pulses
	if m.pulses != 9 {
		t.Errorf("Expected 9 pulses, got %d", m.pulses)
	}
}

func TestReelResetFromZero(t *testing.T) {
	m := newTestReelModel(0, 4)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = updated.(reelModel)

	if m.running {
		t.Error("Zero value should finish immediately")
	}
	if !m.finished {
		t.Error("Expected finished for zero value")
	}
	if cmd != nil {
		t.Error("Expected no tick command for zero value")
	}
	if m.pulses != 0 {
		t.Errorf("Expected 0 pulses, got %d", m.pulses)
	}
}

func TestReelRestoreScore(t *testing.T) {
	m := newTestReelModel(2875, 4)

	// Run the reset to zero
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = updated.(reelModel)
	for i := 0; m.running && i < 20; i++ {
		updated, _ = m.Update(reelPulseMsg{})
		m = updated.(reelModel)
	}
	if m.bank.Value() != 0 {
		t.Fatalf("Expected 0 after reset, got %d", m.bank.Value())
	}

	// Restore the starting score
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(reelModel)

	if m.bank.Value() != 2875 {
		t.Errorf("Expected restored value 2875, got %d", m.bank.Value())
	}
}

func TestSortListedByNameAndDate(t *testing.T) {
	a1, _ := domain.NewAsset("Bravo", "sound", "", nil)
	a2, _ := domain.NewAsset("Alpha", "sound", "", nil)
	a1.CreatedAt = a1.CreatedAt.Add(-time.Hour)

	rows := []listed{
		{library: "lib", asset: a1},
		{library: "lib", asset: a2},
	}

	sortListed(rows, "name", false)
	if rows[0].asset.Name != "Alpha" {
		t.Errorf("Expected Alpha first by name, got %s", rows[0].asset.Name)
	}

	sortListed(rows, "date", false)
	if rows[0].asset.Name != "Bravo" {
		t.Errorf("Expected Bravo first by date, got %s", rows[0].asset.Name)
	}

	sortListed(rows, "name", true)
	if rows[0].asset.Name != "Bravo" {
		t.Errorf("Expected Bravo first by reversed name, got %s", rows[0].asset.Name)
	}
}
