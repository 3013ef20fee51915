//go:build headless

package window

import "github.com/olivier-w/wavescope/internal/frame"

// Run always fails in headless builds.
func Run(_ *frame.Loop, _ string, _ int) error {
	return ErrUnavailable
}
