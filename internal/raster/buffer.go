package raster

import "fmt"

// Buffer is a row-major monochrome pixel mask. It is allocated once and
// overwritten in place by every render.
type Buffer struct {
	Width  int
	Height int
	Pix    []bool
}

// NewBuffer allocates a cleared width×height buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d buffer", ErrDegenerateGeometry, width, height)
	}
	return &Buffer{Width: width, Height: height, Pix: make([]bool, width*height)}, nil
}

// At reports whether the pixel at column x, row y is on.
func (b *Buffer) At(x, y int) bool {
	return b.Pix[y*b.Width+x]
}

// Clear turns every pixel off.
func (b *Buffer) Clear() {
	clear(b.Pix)
}

// Equal reports whether both buffers have the same geometry and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.Width != o.Width || b.Height != o.Height || len(b.Pix) != len(o.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}
