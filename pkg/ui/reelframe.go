package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderReelBank renders a row of digit wheels, most-significant wheel
// on the left. wheels is least-significant first, matching the
// actuator order of the reel driver.
func RenderReelBank(wheels []int) string {
	boxes := make([]string, 0, len(wheels))
	for i := len(wheels) - 1; i >= 0; i-- {
		boxes = append(boxes, StyleReelWheel.Render(fmt.Sprintf("%d", wheels[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}

// RenderReelCaption renders the status line under the reel bank
func RenderReelCaption(label string, value uint64) string {
	return StyleReelFrame.Render(fmt.Sprintf("%s %s %d", IconReel, label, value))
}
