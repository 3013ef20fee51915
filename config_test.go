package main

import (
	"errors"
	"io"
	"testing"

	"github.com/olivier-w/wavescope/internal/termview"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-blocks", "-zoom", "0.5", "song.wav", "320", "96"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.path != "song.wav" || opts.width != 320 || opts.height != 96 {
		t.Fatalf("unexpected positional args: %+v", opts)
	}
	if opts.mode() != termview.Blocks {
		t.Fatal("expected -blocks to select block mode")
	}
	cfg := opts.viewConfig()
	if cfg.ZoomStep != 0.5 {
		t.Fatalf("ZoomStep = %v, want 0.5", cfg.ZoomStep)
	}
	if cfg.PanStep != 0.25 || cfg.Precision != 0.1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseArgsPathOnly(t *testing.T) {
	opts, err := parseArgs([]string{"song.wav"}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.width != 0 || opts.height != 0 || opts.window || opts.scale != 1 {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if opts.mode() != termview.Braille {
		t.Fatal("expected braille by default")
	}
}

func TestParseArgsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no path", nil},
		{"too many", []string{"a.wav", "1", "2", "3"}},
		{"zero width", []string{"a.wav", "0"}},
		{"text width", []string{"a.wav", "wide"}},
		{"one row", []string{"a.wav", "10", "1"}},
		{"bad scale", []string{"-scale", "0", "a.wav"}},
		{"negative zoom", []string{"-zoom", "-1", "a.wav"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args, io.Discard)
			if !errors.Is(err, errUsage) {
				t.Fatalf("parseArgs(%q) error = %v, want errUsage", tt.args, err)
			}
		})
	}
}

func TestResolveGeometry(t *testing.T) {
	w, h := resolveGeometry(options{window: true})
	if w != defaultWindowWidth || h != defaultWindowHeight {
		t.Fatalf("window geometry = %dx%d", w, h)
	}

	w, h = resolveGeometry(options{window: true, width: 300, height: 100})
	if w != 300 || h != 100 {
		t.Fatalf("explicit geometry = %dx%d, want 300x100", w, h)
	}
}

func TestTerminalBuffer(t *testing.T) {
	w, h := terminalBuffer(options{}, 84, 21)
	if w != 160 || h != 40 {
		t.Fatalf("braille buffer = %dx%d, want 160x40", w, h)
	}

	w, h = terminalBuffer(options{blocks: true}, 84, 21)
	if w != 80 || h != 20 {
		t.Fatalf("block buffer = %dx%d, want 80x20", w, h)
	}

	w, h = terminalBuffer(options{}, 2, 2)
	if w != 2 || h != 4 {
		t.Fatalf("tiny terminal buffer = %dx%d, want 2x4", w, h)
	}
}
