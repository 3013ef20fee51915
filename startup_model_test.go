package main

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/wavescope/internal/decode"
	"github.com/olivier-w/wavescope/internal/ui"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestStartupModelErrorQuits(t *testing.T) {
	m := newStartupModel(options{path: "song.wav"}, 40, 16)

	model, cmd := m.Update(startupResolvedMsg{err: errBoom{}})
	if cmd == nil {
		t.Fatal("expected quit command on error")
	}
	startup, ok := model.(startupModel)
	if !ok {
		t.Fatalf("expected startupModel, got %T", model)
	}
	if !errors.Is(startup.err, errBoom{}) {
		t.Fatalf("err = %v, want errBoom", startup.err)
	}
	if startup.View() != "" {
		t.Fatal("expected empty view after error")
	}
}

func TestStartupModelHandsOverToViewer(t *testing.T) {
	m := newStartupModel(options{path: "song.wav"}, 40, 16)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(startupModel)

	model, cmd := m.Update(startupResolvedMsg{model: ui.Model{}})
	if cmd == nil {
		t.Fatal("expected init command for the viewer")
	}
	if _, ok := model.(ui.Model); !ok {
		t.Fatalf("expected ui.Model, got %T", model)
	}
}

func TestStartupModelQuitKey(t *testing.T) {
	m := newStartupModel(options{path: "song.wav"}, 40, 16)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestBuildViewerModelRejectsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.wav")
	_, err := buildViewerModel(options{path: path}, 40, 16)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBuildViewerModelRejectsUnknownExtension(t *testing.T) {
	_, err := buildViewerModel(options{path: "notes.txt"}, 40, 16)
	if !errors.Is(err, decode.ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}
