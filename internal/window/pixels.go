package window

import (
	"image/color"

	"github.com/olivier-w/wavescope/internal/frame"
	"github.com/olivier-w/wavescope/internal/raster"
	"github.com/olivier-w/wavescope/internal/samples"
	"github.com/olivier-w/wavescope/internal/util"
)

var (
	backgroundColor = color.RGBA{16, 16, 20, 255}
	upperColor      = color.RGBA{41, 184, 219, 255}
	lowerColor      = color.RGBA{214, 112, 214, 255}
	statusColor     = color.RGBA{190, 190, 190, 255}
)

// fillRGBA expands b into dst as RGBA bytes. The upper half of the buffer
// takes the first channel's color, the rest the second's. dst must hold
// 4*Width*Height bytes.
func fillRGBA(dst []byte, b *raster.Buffer) {
	half := b.Height / 2
	for y := range b.Height {
		on := lowerColor
		if y < half {
			on = upperColor
		}
		row := y * b.Width
		for x := range b.Width {
			c := backgroundColor
			if b.Pix[row+x] {
				c = on
			}
			i := (row + x) * 4
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
		}
	}
}

func statusLine(f frame.Frame, store *samples.Store) string {
	if f.N == 0 || f.Range.Length == 0 {
		return ""
	}
	return util.FormatSpan(store.Duration(f.Range.Start), store.Duration(f.Range.End()), store.Duration(f.N)) +
		"  " + util.FormatZoom(float64(f.N)/float64(f.Range.Length))
}
