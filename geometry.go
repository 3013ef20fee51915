package main

import (
	"os"

	"github.com/olivier-w/wavescope/internal/ui"
	"golang.org/x/term"
)

// Fallback terminal size when stdout is not a terminal.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// resolveGeometry fills in the buffer size the user left out. Windows default
// to a fixed size; terminals fit the waveform between the UI chrome.
func resolveGeometry(o options) (width, height int) {
	if o.window {
		width, height = defaultWindowWidth, defaultWindowHeight
	} else {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || cols <= 0 || rows <= 0 {
			cols, rows = fallbackCols, fallbackRows
		}
		width, height = terminalBuffer(o, cols, rows)
	}
	if o.width > 0 {
		width = o.width
	}
	if o.height > 0 {
		height = o.height
	}
	return width, height
}

func terminalBuffer(o options, cols, rows int) (width, height int) {
	cols = max(cols-ui.ChromeCols, 1)
	rows = max(rows-ui.ChromeRows, 1)
	return o.mode().BufferSize(cols, rows)
}
