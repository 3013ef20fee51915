// Package frame drives the view controller and the rasterizer once per
// input tick and forwards the result to a presenter.
package frame

import (
	"fmt"

	"github.com/olivier-w/wavescope/internal/raster"
	"github.com/olivier-w/wavescope/internal/samples"
	"github.com/olivier-w/wavescope/internal/view"
)

// Source yields the input collected since the previous tick. quit reports a
// close request or quit key.
type Source interface {
	Poll() (in view.Input, quit bool)
}

// Presenter receives the finished frame. It must not retain Buffer past the
// call when it needs a stable copy; the loop overwrites it in place.
type Presenter interface {
	Present(f Frame) error
}

// Frame is what a presenter sees after each tick.
type Frame struct {
	Buffer  *raster.Buffer
	Range   view.Range
	N       int
	Changed bool
	Seq     uint64
}

// Loop owns the sample store, the view controller and the pixel buffer.
type Loop struct {
	store *samples.Store
	ctrl  *view.Controller
	buf   *raster.Buffer
	dirty bool
	seq   uint64
}

// New prepares a loop rendering store into a width×height buffer. The
// controller never zooms below one sample per column.
func New(store *samples.Store, cfg view.Config, width, height int) (*Loop, error) {
	if height < 2 {
		return nil, fmt.Errorf("%w: height %d cannot hold two channels", raster.ErrDegenerateGeometry, height)
	}
	if store.Len() < width {
		return nil, fmt.Errorf("%w: %d samples for %d columns", raster.ErrDegenerateGeometry, store.Len(), width)
	}
	buf, err := raster.NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	cfg.MinLength = max(cfg.MinLength, width)
	return &Loop{
		store: store,
		ctrl:  view.NewController(cfg, store.Len()),
		buf:   buf,
		dirty: true,
	}, nil
}

// Step runs a single tick: poll, update the range, re-render when it changed
// and present. It returns quit=true without presenting once src asks to stop.
func (l *Loop) Step(src Source, p Presenter) (quit bool, err error) {
	in, quit := src.Poll()
	if quit {
		return true, nil
	}
	f, err := l.Tick(in)
	if err != nil {
		return false, err
	}
	return false, p.Present(f)
}

// Tick applies in and renders when the visible range changed or nothing has
// been drawn yet.
func (l *Loop) Tick(in view.Input) (Frame, error) {
	changed := l.ctrl.Apply(in) || l.dirty
	if changed {
		r := l.ctrl.Range()
		left, right := l.store.Slice(r.Start, r.Length)
		if err := raster.RenderStereo(l.buf, left, right); err != nil {
			return Frame{}, fmt.Errorf("%w: range %v: %w", ErrRender, r, err)
		}
		l.dirty = false
		l.seq++
	}
	return Frame{
		Buffer:  l.buf,
		Range:   l.ctrl.Range(),
		N:       l.ctrl.N(),
		Changed: changed,
		Seq:     l.seq,
	}, nil
}

// Run steps until src reports quit or a step fails.
func (l *Loop) Run(src Source, p Presenter) error {
	for {
		quit, err := l.Step(src, p)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (l *Loop) Store() *samples.Store { return l.store }

func (l *Loop) Controller() *view.Controller { return l.ctrl }

// Buffer returns the pixel buffer the loop renders into.
func (l *Loop) Buffer() *raster.Buffer { return l.buf }
