// Package tui provides the Bubble Tea front end for dots.
// It maps mouse and keyboard input onto a dots.Session and draws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animationFPS is the tick rate while an animation is playing.
const animationFPS = 60

// TickMsg is sent to advance animations.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
