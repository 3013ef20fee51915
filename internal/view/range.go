// Package view maps scroll and zoom input onto a sub-range of the sample
// timeline.
package view

import "fmt"

// Range is the visible window [Start, Start+Length) of a timeline of N
// samples.
type Range struct {
	Start  int
	Length int
}

// Full returns the range covering the whole timeline.
func Full(n int) Range { return Range{Start: 0, Length: n} }

// End returns the exclusive end sample.
func (r Range) End() int { return r.Start + r.Length }

// Valid reports whether r fits a timeline of n samples.
func (r Range) Valid(n int) bool {
	return r.Start >= 0 && r.Length >= 1 && r.End() <= n
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End())
}

// Span expresses r as a center and radius in half-sample units, which keeps
// odd lengths exact: Center = 2*Start+Length and Radius = Length.
func (r Range) Span() Span {
	return Span{Center: 2*r.Start + r.Length, Radius: r.Length}
}

// Span is the center/radius form of a Range, measured in half samples. A
// span is valid for n samples when 1 <= Radius <= Center <= 2n-Radius and
// Center and Radius have the same parity.
type Span struct {
	Center int
	Radius int
}

// Range converts s back to its sample range.
func (s Span) Range() Range {
	return Range{Start: (s.Center - s.Radius) / 2, Length: s.Radius}
}

// Valid reports whether s denotes a valid range of a timeline of n samples.
func (s Span) Valid(n int) bool {
	return s.Radius >= 1 && s.Radius <= s.Center && s.Center <= 2*n-s.Radius && (s.Center-s.Radius)%2 == 0
}
