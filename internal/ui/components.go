package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/wavescope/internal/view"
)

// overview tracks the visible range as fractions of the timeline, eased
// towards the controller's range on every tick.
type overview struct {
	spring      harmonica.Spring
	lo, loVel   float64
	hi, hiVel   float64
	initialized bool
}

func newOverview() overview {
	return overview{spring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0)}
}

func (o *overview) update(r view.Range, n int) {
	if n <= 0 {
		return
	}
	lo := float64(r.Start) / float64(n)
	hi := float64(r.End()) / float64(n)
	if !o.initialized {
		o.lo, o.hi = lo, hi
		o.initialized = true
		return
	}
	o.lo, o.loVel = o.spring.Update(o.lo, o.loVel, lo)
	o.hi, o.hiVel = o.spring.Update(o.hi, o.hiVel, hi)
}

// render draws the timeline as a bar of width cells with the visible part
// highlighted. At least one cell is always highlighted.
func (o overview) render(width int) string {
	if width < 10 {
		width = 10
	}
	from := int(math.Floor(clamp01(o.lo) * float64(width)))
	to := int(math.Ceil(clamp01(o.hi) * float64(width)))
	from = min(from, width-1)
	to = min(max(to, from+1), width)

	return strings.Repeat("─", from) +
		overviewStyle.Render(strings.Repeat("━", to-from)) +
		strings.Repeat("─", width-to)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
