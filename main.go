package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/wavescope/internal/ui"
	"github.com/olivier-w/wavescope/internal/window"
)

const debugLogFile = "wavescope-debug.log"

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fail(err)
	}

	closeLog := setupLogging()
	defer closeLog()

	width, height := resolveGeometry(opts)

	if opts.window {
		s, err := openSession(opts, width, height)
		if err != nil {
			fail(err)
		}
		if err := window.Run(s.loop, s.metadata.Title, opts.scale); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(newStartupModel(opts, width, height), tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch m := finalModel.(type) {
	case startupModel:
		if m.err != nil {
			fail(m.err)
		}
	case ui.Model:
		if err := m.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// fail prints err and the usage line, then exits.
func fail(err error) {
	if err != errUsage {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	fmt.Fprintln(os.Stderr, usageLine)
	os.Exit(1)
}

// setupLogging sends the standard logger to a file when WAVESCOPE_DEBUG is
// set and discards it otherwise, so nothing is written under the TUI.
func setupLogging() func() {
	if os.Getenv("WAVESCOPE_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(debugLogFile, "wavescope")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { f.Close() }
}
