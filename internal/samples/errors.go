package samples

import "errors"

var (
	// ErrUnsupportedFormat is returned when the decoded stream is not
	// stereo 16-bit signed integer PCM.
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	// ErrMalformedInput is returned when the channel data does not match
	// its metadata: wrong channel count, unequal lengths or no samples.
	ErrMalformedInput = errors.New("malformed sample data")
)
