package raster

import "errors"

// ErrDegenerateGeometry is returned when the target geometry cannot hold at
// least one sample per column and one row per band.
var ErrDegenerateGeometry = errors.New("degenerate render geometry")
