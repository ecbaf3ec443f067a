// Package tui provides the Bubble Tea front end for flippy.
// It runs the fixed-rate tick loop, maps keys and mouse clicks to game
// actions, and hosts the shape menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flippy/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// menuTickMsg drives the menu's pick animation. It is separate from TickMsg
// so a tick left over from a finished game never advances the menu.
type menuTickMsg time.Time

// menuTickCmd schedules the next menu animation frame.
func menuTickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickDuration(), func(t time.Time) tea.Msg {
		return menuTickMsg(t)
	})
}
