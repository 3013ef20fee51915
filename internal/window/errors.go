package window

import "errors"

// ErrUnavailable is returned by Run in builds without window support.
var ErrUnavailable = errors.New("window output not available in this build")
