package frame

import "errors"

// ErrRender wraps a rasterizer failure for the range that was being drawn.
var ErrRender = errors.New("render failed")
