// Package raster reduces runs of 16-bit samples to per-column peak bars.
//
// A sample run is split into one contiguous chunk per pixel column, with
// boundaries at i*len/width so the remainder is spread across the row instead
// of piling up in the last column. Each column draws a vertically centered bar
// whose height is the chunk's peak absolute amplitude scaled against
// MaxAmplitude.
package raster

import "fmt"

// MaxAmplitude is the largest representable 16-bit magnitude. -32768 is
// treated as this value.
const MaxAmplitude = 32767

// Render allocates a width×height buffer and draws samples into it.
func Render(samples []int16, width, height int) (*Buffer, error) {
	b, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	if err := RenderBand(b, 0, height, samples); err != nil {
		return nil, err
	}
	return b, nil
}

// RenderStereo draws left into the upper half of b and right into the lower
// half. With an odd height the lower half gets the extra row.
func RenderStereo(b *Buffer, left, right []int16) error {
	upper := b.Height / 2
	if err := RenderBand(b, 0, upper, left); err != nil {
		return fmt.Errorf("upper channel: %w", err)
	}
	if err := RenderBand(b, upper, b.Height-upper, right); err != nil {
		return fmt.Errorf("lower channel: %w", err)
	}
	return nil
}

// RenderBand overwrites rows [y0, y0+height) of b with the peak bars of
// samples. Every pixel of the band is written, so stale pixels from a
// previous range never survive. samples is not modified.
func RenderBand(b *Buffer, y0, height int, samples []int16) error {
	width := b.Width
	switch {
	case width < 1 || height < 1:
		return fmt.Errorf("%w: %dx%d band", ErrDegenerateGeometry, width, height)
	case y0 < 0 || y0+height > b.Height:
		return fmt.Errorf("%w: band rows [%d,%d) outside buffer height %d", ErrDegenerateGeometry, y0, y0+height, b.Height)
	case len(samples) < width:
		return fmt.Errorf("%w: %d samples for %d columns", ErrDegenerateGeometry, len(samples), width)
	}

	n := len(samples)
	for x := range width {
		lo := x * n / width
		hi := (x + 1) * n / width
		bar := barHeight(peak(samples[lo:hi]), height)

		// The run keeps its exact length; an odd leftover row goes below it.
		top := (height - bar) / 2
		bottom := top + bar
		idx := y0*width + x
		for y := range height {
			b.Pix[idx] = y >= top && y < bottom
			idx += width
		}
	}
	return nil
}

// peak returns the largest absolute sample value, widened so that -32768
// does not overflow, and clamped to MaxAmplitude.
func peak(chunk []int16) int32 {
	var p int32
	for _, s := range chunk {
		v := int32(s)
		if v < 0 {
			v = -v
		}
		if v > p {
			p = v
		}
	}
	return min(p, MaxAmplitude)
}

func barHeight(p int32, height int) int {
	return int(int64(p) * int64(height) / MaxAmplitude)
}
