package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces the frame loop at roughly 60 Hz.
const frameInterval = 16 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
