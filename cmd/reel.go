package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
	"github.com/Tom-Neverwinter/pinlib/internal/core/services"
	"github.com/Tom-Neverwinter/pinlib/pkg/ui"
)

var (
	reelWheels   int
	reelInterval int
	reelHeadless bool
)

// reelCmd represents the reel command
var reelCmd = &cobra.Command{
	Use:   "reel [score]",
	Short: "Drive a simulated score-reel display",
	Long: `Show a score on a bank of digit wheels and run the reset-to-zero
sequence.

The reset advances every non-zero wheel by one position per pulse,
without carrying, until all wheels read zero. A negative score is
displayed by magnitude, the way an electromechanical reel would.

In the interactive view, press 'r' to run the reset. With --headless
the sequence runs straight through, printing one line per pulse.

Examples:
  pinlib reel 18
  pinlib reel 2875 --wheels 4
  pinlib reel 990 --headless --interval 100`,
	Args: cobra.ExactArgs(1),
	RunE: runReel,
}

func init() {
	reelCmd.Flags().IntVar(&reelWheels, "wheels", 0, "Number of digit wheels (0 = config default)")
	reelCmd.Flags().IntVar(&reelInterval, "interval", 0, "Milliseconds per reset pulse (0 = config default)")
	reelCmd.Flags().BoolVar(&reelHeadless, "headless", false, "Run the reset without the TUI")
}

func runReel(cmd *cobra.Command, args []string) error {
	score, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid score '%s': %w", args[0], err)
	}

	wheels := reelWheels
	if wheels <= 0 {
		wheels = appConfig.ReelWheels
	}
	interval := time.Duration(reelInterval) * time.Millisecond
	if reelInterval <= 0 {
		interval = time.Duration(appConfig.ReelIntervalMS) * time.Millisecond
	}

	bank := domain.NewReelBank(wheels)
	bank.SetScore(score)

	if reelHeadless {
		return runReelHeadless(bank, interval)
	}

	m := reelModel{
		bank:     bank,
		interval: interval,
		score:    score,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running reel view: %w", err)
	}

	return nil
}

// consoleReelListener prints the reset notifications one line each
type consoleReelListener struct {
	wheels int
}

func (l *consoleReelListener) ResetStarted(from uint64) {
	fmt.Println(ui.FormatInfo(fmt.Sprintf("Reset started from %d", from)))
}

func (l *consoleReelListener) ResetPulse(value uint64) {
	bank := domain.NewReelBank(l.wheels)
	bank.SetValue(value)
	digits := make([]string, 0, l.wheels)
	for i := bank.Size() - 1; i >= 0; i-- {
		digits = append(digits, fmt.Sprintf("%d", bank.Wheels()[i]))
	}
	fmt.Printf("  %s %s\n", ui.IconReel, strings.Join(digits, " "))
}

func (l *consoleReelListener) ResetStopped() {
	fmt.Println(ui.FormatSuccess("Reset complete"))
}

func runReelHeadless(bank *domain.ReelBank, interval time.Duration) error {
	svc := services.NewReelService(&consoleReelListener{wheels: bank.Size()})
	resp, err := svc.Reset(getContext(), services.ResetRequest{
		From:     bank.Value(),
		Interval: interval,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d pulses in %s", resp.Steps, resp.Duration.Round(time.Millisecond))))
	return nil
}

// reelPulseMsg is one animation step of the reset sequence
type reelPulseMsg struct{}

// Reel model
type reelModel struct {
	bank     *domain.ReelBank
	interval time.Duration
	score    int
	running  bool
	pulses   int
	finished bool
	width    int
	height   int
}

func (m reelModel) Init() tea.Cmd {
	return nil
}

func (m reelModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return reelPulseMsg{}
	})
}

func (m reelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "r":
			if !m.running {
				m.running = true
				m.finished = false
				m.pulses = 0
				if m.bank.Value() == 0 {
					// Already zeroed: the sequence starts and stops at once
					m.running = false
					m.finished = true
					return m, nil
				}
				return m, m.tick()
			}

		case "s":
			if !m.running {
				m.bank.SetScore(m.score)
				m.finished = false
			}
		}

	case reelPulseMsg:
		if !m.running {
			return m, nil
		}
		m.bank.SetValue(domain.Advance(m.bank.Value()))
		m.pulses++
		if m.bank.Value() == 0 {
			m.running = false
			m.finished = true
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m reelModel) View() string {
	var s strings.Builder

	title := ui.StylePrimary.Copy().Bold(true).Padding(0, 1).Render(ui.IconReel + " Score Reels")
	s.WriteString("\n")
	s.WriteString(title)
	s.WriteString("\n\n")

	s.WriteString("  ")
	s.WriteString(ui.RenderReelBank(m.bank.Wheels()))
	s.WriteString("\n\n")

	switch {
	case m.running:
		s.WriteString("  ")
		s.WriteString(ui.RenderReelCaption(fmt.Sprintf("resetting... pulse %d, at", m.pulses), m.bank.Value()))
	case m.finished:
		s.WriteString("  ")
		s.WriteString(ui.StyleSuccess.Render(fmt.Sprintf("Reset complete after %d pulses", m.pulses)))
	default:
		s.WriteString("  ")
		s.WriteString(ui.RenderReelCaption("showing", m.bank.Value()))
	}
	s.WriteString("\n\n")

	help := "[r] Reset  [s] Restore score  [q] Quit"
	s.WriteString("  ")
	s.WriteString(ui.StyleMuted.Render(help))
	s.WriteString("\n")

	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(s.String())
	}
	return s.String()
}
