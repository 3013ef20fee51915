package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/wavescope/internal/view"
)

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// keyInput maps navigation keys to one unit of scroll. Shifted arrows move
// in precision steps.
func keyInput(msg tea.KeyMsg) (view.Input, bool) {
	switch msg.String() {
	case "left", "h":
		return view.Input{DX: -1}, true
	case "right", "l":
		return view.Input{DX: 1}, true
	case "shift+left", "H":
		return view.Input{DX: -1, Precision: true}, true
	case "shift+right", "L":
		return view.Input{DX: 1, Precision: true}, true
	case "up", "k", "+", "=":
		return view.Input{DY: 1}, true
	case "down", "j", "-", "_":
		return view.Input{DY: -1}, true
	case "shift+up", "K":
		return view.Input{DY: 1, Precision: true}, true
	case "shift+down", "J":
		return view.Input{DY: -1, Precision: true}, true
	case "0", "home":
		return view.Input{Reset: true}, true
	}
	return view.Input{}, false
}

// wheelInput maps a wheel event to one unit of scroll. Shift swaps the axes
// and Ctrl selects precision steps.
func wheelInput(msg tea.MouseMsg) (view.Input, bool) {
	if msg.Action != tea.MouseActionPress {
		return view.Input{}, false
	}
	in := view.Input{AxisSwap: msg.Shift, Precision: msg.Ctrl}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		in.DY = 1
	case tea.MouseButtonWheelDown:
		in.DY = -1
	case tea.MouseButtonWheelRight:
		in.DX = 1
	case tea.MouseButtonWheelLeft:
		in.DX = -1
	default:
		return view.Input{}, false
	}
	return in, true
}

// accumulate folds in into the input pending for the next tick. Deltas add
// up; modifiers follow the latest event. A reset discards earlier deltas.
func accumulate(acc, in view.Input) view.Input {
	if in.Reset {
		return view.Input{Reset: true}
	}
	acc.DX += in.DX
	acc.DY += in.DY
	acc.Precision = in.Precision
	acc.AxisSwap = in.AxisSwap
	return acc
}

func helpText() string {
	return "wheel zoom  shift+wheel pan  ctrl fine  ←/→ pan  +/- zoom  0 reset  q quit"
}
