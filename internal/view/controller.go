package view

import "math"

// Input is the scroll and modifier state collected during one tick.
type Input struct {
	// DX pans: positive moves the window towards later samples.
	DX float64
	// DY zooms: positive zooms in, negative zooms out.
	DY float64
	// Precision scales both axes by Config.Precision.
	Precision bool
	// AxisSwap exchanges the axes before they are applied, so a plain
	// vertical wheel pans: DX' = -DY, DY' = DX.
	AxisSwap bool
	// Reset returns to the full extent.
	Reset bool
}

// Config holds the controller's step constants.
type Config struct {
	// PanStep is the fraction of the current radius moved per unit of DX.
	PanStep float64
	// ZoomStep is the fraction of the current radius added or removed on
	// each side per unit of DY.
	ZoomStep float64
	// Precision multiplies both steps while the precision modifier is held.
	Precision float64
	// MinLength is the smallest window zooming in may reach. Values below
	// 1 are treated as 1.
	MinLength int
}

// DefaultConfig returns the step constants used by the command line.
func DefaultConfig() Config {
	return Config{
		PanStep:   0.25,
		ZoomStep:  0.2,
		Precision: 0.1,
		MinLength: 1,
	}
}

// State is the controller state: the visible range of a timeline of N
// samples.
type State struct {
	N     int
	Range Range
}

// Next applies one tick of input to s under the pan-and-zoom policy and
// reports whether the range changed. Zoom is applied before pan. Inputs that
// are not finite are ignored; every result satisfies Range.Valid(s.N).
func Next(cfg Config, s State, in Input) (State, bool) {
	minLen := max(cfg.MinLength, 1)
	minLen = min(minLen, s.N)

	if in.Reset {
		full := Full(s.N)
		next := State{N: s.N, Range: full}
		return next, next.Range != s.Range
	}

	dx, dy := in.DX, in.DY
	if in.AxisSwap {
		dx, dy = -dy, dx
	}
	if !finite(dx) || !finite(dy) {
		return s, false
	}
	mult := 1.0
	if in.Precision {
		mult = cfg.Precision
	}

	r := s.Range
	if dy != 0 {
		r = zoom(r, s.N, minLen, dy*cfg.ZoomStep*mult)
	}
	if dx != 0 {
		r = pan(r, s.N, dx*cfg.PanStep*mult)
	}

	next := State{N: s.N, Range: r}
	return next, r != s.Range
}

// zoom grows or shrinks r symmetrically around its center by
// |factor|*radius samples per side, then clamps the length to [minLen, n]
// and shifts the window back inside the timeline.
func zoom(r Range, n, minLen int, factor float64) Range {
	step := steps(factor, r.Length)
	if step == 0 {
		return r
	}

	length := r.Length
	if factor > 0 {
		length -= 2 * step
	} else {
		length += 2 * step
	}
	length = min(max(length, minLen), n)
	if length == r.Length {
		return r
	}

	center2 := 2*r.Start + r.Length
	start := (center2 - length) / 2
	start = min(max(start, 0), n-length)
	return Range{Start: start, Length: length}
}

// pan moves r by |factor|*radius samples in the direction of factor,
// clamped so the window stays inside the timeline.
func pan(r Range, n int, factor float64) Range {
	step := steps(factor, r.Length)
	if factor < 0 {
		step = -step
	}
	start := min(max(r.Start+step, 0), n-r.Length)
	return Range{Start: start, Length: r.Length}
}

// steps converts a radius-relative factor into a whole number of samples,
// never less than one for a non-zero factor so small windows still move.
func steps(factor float64, length int) int {
	if factor == 0 {
		return 0
	}
	radius := float64(length) / 2
	s := math.Abs(factor) * radius
	if s > float64(math.MaxInt32) {
		return math.MaxInt32
	}
	return max(int(math.Round(s)), 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Controller owns the view state for the frame loop.
type Controller struct {
	cfg   Config
	state State
}

// NewController starts at the full extent of a timeline of n samples.
func NewController(cfg Config, n int) *Controller {
	return &Controller{cfg: cfg, state: State{N: n, Range: Full(n)}}
}

// Apply runs one tick of input and reports whether the range changed.
func (c *Controller) Apply(in Input) bool {
	next, changed := Next(c.cfg, c.state, in)
	c.state = next
	return changed
}

func (c *Controller) Range() Range { return c.state.Range }

func (c *Controller) N() int { return c.state.N }

// Zoom returns the magnification relative to the full extent.
func (c *Controller) Zoom() float64 {
	return float64(c.state.N) / float64(c.state.Range.Length)
}
