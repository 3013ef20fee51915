package window

import (
	"testing"

	"github.com/olivier-w/wavescope/internal/frame"
	"github.com/olivier-w/wavescope/internal/raster"
	"github.com/olivier-w/wavescope/internal/samples"
	"github.com/olivier-w/wavescope/internal/view"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   keyState
		want view.Input
		quit bool
	}{
		{"idle", keyState{}, view.Input{}, false},
		{"wheel", keyState{wheelY: 2}, view.Input{DY: 2}, false},
		{"shift swaps", keyState{wheelY: 1, shift: true}, view.Input{DY: 1, AxisSwap: true}, false},
		{"ctrl is precise", keyState{wheelX: -1, ctrl: true}, view.Input{DX: -1, Precision: true}, false},
		{"arrows add to wheel", keyState{wheelY: 1, up: true, right: true}, view.Input{DX: 1, DY: 2}, false},
		{"left and down", keyState{left: true, down: true}, view.Input{DX: -1, DY: -1}, false},
		{"reset", keyState{reset: true}, view.Input{Reset: true}, false},
		{"quit wins", keyState{wheelY: 1, quit: true}, view.Input{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := translate(tt.in)
			if got != tt.want || quit != tt.quit {
				t.Fatalf("translate() = %+v, %v; want %+v, %v", got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestFillRGBA(t *testing.T) {
	b, err := raster.NewBuffer(2, 4)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	b.Pix[0] = true // (0,0) upper
	b.Pix[7] = true // (1,3) lower

	dst := make([]byte, 4*2*4)
	for i := range dst {
		dst[i] = 0xAA
	}
	fillRGBA(dst, b)

	check := func(x, y int, want [4]byte) {
		t.Helper()
		i := (y*2 + x) * 4
		got := [4]byte{dst[i], dst[i+1], dst[i+2], dst[i+3]}
		if got != want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
		}
	}
	bg := [4]byte{backgroundColor.R, backgroundColor.G, backgroundColor.B, backgroundColor.A}
	check(0, 0, [4]byte{upperColor.R, upperColor.G, upperColor.B, upperColor.A})
	check(1, 3, [4]byte{lowerColor.R, lowerColor.G, lowerColor.B, lowerColor.A})
	check(1, 0, bg)
	check(0, 2, bg)
}

func TestStatusLine(t *testing.T) {
	left := make([]int16, 16000)
	right := make([]int16, 16000)
	store, err := samples.New(samples.Format{Channels: 2, BitDepth: 16, Encoding: samples.EncodingSignedInt, SampleRate: 8000}, [][]int16{left, right})
	if err != nil {
		t.Fatalf("samples.New() error = %v", err)
	}

	got := statusLine(frame.Frame{Range: view.Range{Start: 8000, Length: 4000}, N: 16000}, store)
	if want := "0:01 - 0:01 / 0:02  zoom 4.0x"; got != want {
		t.Fatalf("statusLine() = %q, want %q", got, want)
	}
	if got := statusLine(frame.Frame{}, store); got != "" {
		t.Fatalf("statusLine(empty) = %q, want empty", got)
	}
}
