package decode

import "errors"

var (
	// ErrUnknownFormat is returned for file extensions no decoder handles.
	ErrUnknownFormat = errors.New("unknown audio format")
	// ErrInvalidFile is returned when the container cannot be parsed.
	ErrInvalidFile = errors.New("invalid audio file")
)
