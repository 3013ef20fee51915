// Package termview encodes a monochrome pixel buffer as terminal text.
package termview

import (
	"strings"

	"github.com/olivier-w/wavescope/internal/raster"
)

// Mode selects how pixels are packed into terminal cells.
type Mode uint8

const (
	// Braille packs 2×4 pixels per cell.
	Braille Mode = iota
	// Blocks packs 1×2 pixels per cell using half-block glyphs.
	Blocks
)

// CellSize returns the pixel footprint of one terminal cell.
func (m Mode) CellSize() (w, h int) {
	if m == Blocks {
		return 1, 2
	}
	return 2, 4
}

// BufferSize returns the pixel buffer that exactly fills cols×rows cells.
func (m Mode) BufferSize(cols, rows int) (width, height int) {
	cw, ch := m.CellSize()
	return cols * cw, rows * ch
}

// Renderer converts a raster.Buffer into a terminal string. Each pixel maps
// to exactly one dot; there is no scaling.
type Renderer struct {
	mode  Mode
	color colorMode
	sb    strings.Builder // reusable builder to reduce allocations
}

// NewRenderer creates a renderer using the current terminal's color
// capabilities.
func NewRenderer(mode Mode) *Renderer {
	return &Renderer{mode: mode, color: detectColorMode()}
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Render encodes b. Rows in the upper half of the buffer take the first
// channel's color, the rest the second's.
func (r *Renderer) Render(b *raster.Buffer) string {
	if b == nil || b.Width < 1 || b.Height < 1 {
		return ""
	}
	cw, ch := r.mode.CellSize()
	cols := (b.Width + cw - 1) / cw
	rows := (b.Height + ch - 1) / ch

	r.sb.Reset()
	r.sb.Grow(cols * rows * 8)

	for row := range rows {
		lastFg := ""
		y0 := row * ch
		fg := fgColorSeq(r.color, lowerColor)
		if y0 < b.Height/2 {
			fg = fgColorSeq(r.color, upperColor)
		}
		for col := range cols {
			x0 := col * cw
			var glyph rune
			if r.mode == Blocks {
				glyph = blockGlyph(pixel(b, x0, y0), pixel(b, x0, y0+1))
			} else {
				glyph = brailleGlyph(b, x0, y0)
			}
			if glyph != ' ' && fg != lastFg {
				r.sb.WriteString(fg)
				lastFg = fg
			}
			r.sb.WriteRune(glyph)
		}
		if lastFg != "" {
			r.sb.WriteString(ansiReset)
		}
		if row < rows-1 {
			r.sb.WriteByte('\n')
		}
	}
	return r.sb.String()
}

// pixel reads b at (x, y), treating out-of-range coordinates as off.
func pixel(b *raster.Buffer, x, y int) bool {
	if x >= b.Width || y >= b.Height {
		return false
	}
	return b.At(x, y)
}

func brailleGlyph(b *raster.Buffer, x0, y0 int) rune {
	var pattern uint
	for dx := range 2 {
		for dy := range 4 {
			if pixel(b, x0+dx, y0+dy) {
				pattern |= 1 << brailleBits[dx][dy]
			}
		}
	}
	if pattern == 0 {
		return ' '
	}
	return rune(0x2800 + pattern)
}

func blockGlyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}
