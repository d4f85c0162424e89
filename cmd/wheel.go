package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/Tom-Neverwinter/pinlib/internal/core/domain"
)

// wheelCmd represents the wheel command
var wheelCmd = &cobra.Command{
	Use:   "wheel [score]",
	Short: "Inspect reel wheels digit by digit",
	Long: `Show each reel wheel as a full digit column, the way the physical
wheel is printed. The current position is highlighted.

Keys:
  Space       Send one reset pulse
  r           Run the full reset sequence
  s           Restore the starting score
  q / Esc     Quit

Examples:
  pinlib wheel 2875
  pinlib wheel 18 --wheels 2`,
	Args: cobra.ExactArgs(1),
	RunE: runWheel,
}

var wheelCount int

func init() {
	wheelCmd.Flags().IntVar(&wheelCount, "wheels", 0, "Number of digit wheels (0 = config default)")
}

func runWheel(cmd *cobra.Command, args []string) error {
	score, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid score '%s': %w", args[0], err)
	}

	wheels := wheelCount
	if wheels <= 0 {
		wheels = appConfig.ReelWheels
	}

	view, err := newWheelView(score, wheels, time.Duration(appConfig.ReelIntervalMS)*time.Millisecond)
	if err != nil {
		return err
	}
	return view.Run()
}

// wheelView is a raw terminal view of a reel bank
type wheelView struct {
	bank     *domain.ReelBank
	score    int
	interval time.Duration
	pulses   int
	screen   tcell.Screen
	width    int
	height   int
}

func newWheelView(score, wheels int, interval time.Duration) (*wheelView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()

	bank := domain.NewReelBank(wheels)
	bank.SetScore(score)

	return &wheelView{
		bank:     bank,
		score:    score,
		interval: interval,
		screen:   screen,
		width:    width,
		height:   height,
	}, nil
}

// Run starts the viewer
func (v *wheelView) Run() error {
	defer v.screen.Fini()

	v.screen.Clear()
	v.render()

	for {
		ev := v.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.width, v.height = ev.Size()
			v.screen.Sync()
			v.render()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}

			v.handleKeyPress(ev)
			v.render()
		}
	}
}

// handleKeyPress processes keyboard input
func (v *wheelView) handleKeyPress(ev *tcell.EventKey) {
	switch ev.Rune() {
	case ' ', 'p':
		v.pulse()
	case 'r':
		v.runReset()
	case 's':
		v.bank.SetScore(v.score)
		v.pulses = 0
	}
}

// pulse advances every non-zero wheel one position
func (v *wheelView) pulse() {
	if v.bank.Value() == 0 {
		return
	}
	v.bank.SetValue(domain.Advance(v.bank.Value()))
	v.pulses++
}

// runReset steps the bank to zero, redrawing between pulses
func (v *wheelView) runReset() {
	for v.bank.Value() != 0 {
		v.pulse()
		v.render()
		time.Sleep(v.interval)
	}
}

// render draws the current state
func (v *wheelView) render() {
	v.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	mutedStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	digitStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	currentStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)

	v.drawText(0, 0, "Reel Wheels", titleStyle)
	v.drawText(0, 1, strings.Repeat("─", v.width), mutedStyle)

	// One column per wheel, most-significant on the left. Each column
	// shows the full 0-9 strip with the current position highlighted.
	wheels := v.bank.Wheels()
	colWidth := 4
	baseY := 3

	for col := 0; col < len(wheels); col++ {
		// wheels is least-significant first
		d := wheels[len(wheels)-1-col]
		x := 2 + col*colWidth

		for digit := 0; digit <= 9; digit++ {
			style := digitStyle
			text := fmt.Sprintf(" %d ", digit)
			if digit == d {
				style = currentStyle
			}
			v.drawText(x, baseY+digit, text, style)
		}
	}

	statusY := baseY + 12
	v.drawText(0, statusY, fmt.Sprintf("Value: %d   Pulses: %d", v.bank.Value(), v.pulses), digitStyle)

	footerY := v.height - 2
	v.drawText(0, footerY, strings.Repeat("─", v.width), mutedStyle)
	footerY++
	helpText := "Space/p: Pulse │ r: Reset │ s: Restore │ q/Esc: Quit"
	v.drawText(0, footerY, helpText, mutedStyle)

	v.screen.Show()
}

// drawText draws text at the specified position
func (v *wheelView) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= v.width {
			break
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
