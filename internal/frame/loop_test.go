package frame

import (
	"errors"
	"testing"

	"github.com/olivier-w/wavescope/internal/raster"
	"github.com/olivier-w/wavescope/internal/samples"
	"github.com/olivier-w/wavescope/internal/view"
)

type scriptedSource struct {
	inputs []view.Input
	polls  int
}

func (s *scriptedSource) Poll() (view.Input, bool) {
	if s.polls >= len(s.inputs) {
		return view.Input{}, true
	}
	in := s.inputs[s.polls]
	s.polls++
	return in, false
}

type recordingPresenter struct {
	frames []Frame
	pix    [][]bool
	err    error
}

func (p *recordingPresenter) Present(f Frame) error {
	p.frames = append(p.frames, f)
	p.pix = append(p.pix, append([]bool(nil), f.Buffer.Pix...))
	return p.err
}

func newStore(t *testing.T, n int) *samples.Store {
	t.Helper()
	left := make([]int16, n)
	right := make([]int16, n)
	for i := range n {
		left[i] = int16((i * 37) % 32767)
		right[i] = int16(-((i * 53) % 32767))
	}
	s, err := samples.New(samples.Format{Channels: 2, BitDepth: 16, Encoding: samples.EncodingSignedInt, SampleRate: 8000}, [][]int16{left, right})
	if err != nil {
		t.Fatalf("samples.New() error = %v", err)
	}
	return s
}

func TestLoopRendersFirstTickAndOnlyOnChange(t *testing.T) {
	l, err := New(newStore(t, 4000), view.DefaultConfig(), 40, 20)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := &scriptedSource{inputs: []view.Input{{}, {}, {DY: 1}, {}}}
	p := &recordingPresenter{}

	if err := l.Run(src, p); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(p.frames) != 4 {
		t.Fatalf("expected 4 presented frames, got %d", len(p.frames))
	}

	wantChanged := []bool{true, false, true, false}
	for i, f := range p.frames {
		if f.Changed != wantChanged[i] {
			t.Fatalf("frame %d: changed=%v, want %v", i, f.Changed, wantChanged[i])
		}
	}
	if p.frames[0].Range != view.Full(4000) {
		t.Fatalf("expected first frame at full extent, got %v", p.frames[0].Range)
	}
	if p.frames[2].Range.Length >= 4000 {
		t.Fatalf("expected zoomed range on frame 2, got %v", p.frames[2].Range)
	}
	if p.frames[3].Seq != 2 {
		t.Fatalf("expected 2 renders, got seq %d", p.frames[3].Seq)
	}
}

func TestLoopRenderMatchesRasterizer(t *testing.T) {
	store := newStore(t, 999)
	l, err := New(store, view.DefaultConfig(), 30, 11)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f, err := l.Tick(view.Input{DY: 2, DX: 1})
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	want, _ := raster.NewBuffer(30, 11)
	left, right := store.Slice(f.Range.Start, f.Range.Length)
	if err := raster.RenderStereo(want, left, right); err != nil {
		t.Fatalf("RenderStereo() error = %v", err)
	}
	if !f.Buffer.Equal(want) {
		t.Fatal("loop buffer differs from a fresh render of the same range")
	}
}

func TestLoopIdempotentWithoutInput(t *testing.T) {
	l, err := New(newStore(t, 5000), view.DefaultConfig(), 50, 10)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := &scriptedSource{inputs: []view.Input{{DY: 1}, {}, {}}}
	p := &recordingPresenter{}
	if err := l.Run(src, p); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := 1; i < len(p.pix); i++ {
		for j := range p.pix[0] {
			if p.pix[i][j] != p.pix[0][j] {
				t.Fatalf("frame %d differs from frame 0 at pixel %d", i, j)
			}
		}
	}
}

func TestLoopNeverZoomsBelowOneSamplePerColumn(t *testing.T) {
	l, err := New(newStore(t, 10000), view.DefaultConfig(), 64, 8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for range 100 {
		if _, err := l.Tick(view.Input{DY: 5}); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}
	if got := l.Controller().Range().Length; got != 64 {
		t.Fatalf("expected zoom to stop at 64 samples, got %d", got)
	}
}

func TestNewRejectsDegenerateGeometry(t *testing.T) {
	store := newStore(t, 10)
	for _, tc := range []struct{ w, h int }{{11, 4}, {0, 4}, {4, 1}} {
		if _, err := New(store, view.DefaultConfig(), tc.w, tc.h); !errors.Is(err, raster.ErrDegenerateGeometry) {
			t.Fatalf("%dx%d: expected ErrDegenerateGeometry, got %v", tc.w, tc.h, err)
		}
	}
}

func TestRunStopsOnPresenterError(t *testing.T) {
	l, err := New(newStore(t, 100), view.DefaultConfig(), 10, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	boom := errors.New("boom")
	p := &recordingPresenter{err: boom}
	src := &scriptedSource{inputs: []view.Input{{}, {}, {}}}
	if err := l.Run(src, p); !errors.Is(err, boom) {
		t.Fatalf("expected presenter error, got %v", err)
	}
	if len(p.frames) != 1 {
		t.Fatalf("expected loop to stop after the first frame, got %d", len(p.frames))
	}
}
