package main

import (
	"fmt"
	"log"

	"github.com/olivier-w/wavescope/internal/decode"
	"github.com/olivier-w/wavescope/internal/frame"
	"github.com/olivier-w/wavescope/internal/termview"
	"github.com/olivier-w/wavescope/internal/ui"
)

// session is a decoded file ready to be driven by a frame loop.
type session struct {
	loop     *frame.Loop
	metadata decode.Metadata
}

// openSession decodes path and prepares a width×height frame loop over it.
func openSession(o options, width, height int) (session, error) {
	store, err := decode.Open(o.path)
	if err != nil {
		return session{}, err
	}
	loop, err := frame.New(store, o.viewConfig(), width, height)
	if err != nil {
		return session{}, fmt.Errorf("%s: %w", o.path, err)
	}
	log.Printf("session: %s, %d samples, %dx%d buffer", o.path, store.Len(), width, height)
	return session{loop: loop, metadata: decode.ReadMetadata(o.path)}, nil
}

// buildViewerModel opens the file and wraps it in the terminal UI.
func buildViewerModel(o options, width, height int) (ui.Model, error) {
	s, err := openSession(o, width, height)
	if err != nil {
		return ui.Model{}, err
	}
	screen := termview.NewPresenter(termview.NewRenderer(o.mode()))
	return ui.New(s.loop, screen, s.metadata), nil
}
