package window

import "github.com/olivier-w/wavescope/internal/view"

// keyState is the raw input sampled once per tick.
type keyState struct {
	wheelX, wheelY float64
	shift, ctrl    bool

	left, right, up, down bool
	reset, quit           bool
}

// translate turns the sampled state into controller input. Arrow presses add
// one unit on top of the wheel offsets; held modifiers apply to both.
func translate(k keyState) (view.Input, bool) {
	if k.quit {
		return view.Input{}, true
	}
	in := view.Input{
		DX:        k.wheelX,
		DY:        k.wheelY,
		AxisSwap:  k.shift,
		Precision: k.ctrl,
		Reset:     k.reset,
	}
	if k.left {
		in.DX--
	}
	if k.right {
		in.DX++
	}
	if k.up {
		in.DY++
	}
	if k.down {
		in.DY--
	}
	return in, false
}
