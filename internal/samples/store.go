// Package samples holds the decoded, immutable sample timeline.
package samples

import (
	"fmt"
	"time"
)

// Store is a fully loaded stereo sample timeline. It is built once and never
// mutated; every accessor hands out capacity-limited slices.
type Store struct {
	format Format
	left   []int16
	right  []int16
}

// New validates format and data and takes ownership of channels. Callers must
// not modify the slices afterwards.
func New(format Format, channels [][]int16) (*Store, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if len(channels) != format.Channels {
		return nil, fmt.Errorf("%w: %d channel sequences for %d-channel stream", ErrMalformedInput, len(channels), format.Channels)
	}
	left, right := channels[0], channels[1]
	if len(left) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrMalformedInput)
	}
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: channel lengths differ (%d vs %d)", ErrMalformedInput, len(left), len(right))
	}
	return &Store{format: format, left: left, right: right}, nil
}

// Len returns N, the number of samples per channel.
func (s *Store) Len() int { return len(s.left) }

func (s *Store) Format() Format { return s.format }

// Channel returns the samples of channel ch (0 or 1).
func (s *Store) Channel(ch int) []int16 {
	if ch == 0 {
		return s.left[:len(s.left):len(s.left)]
	}
	return s.right[:len(s.right):len(s.right)]
}

// Slice returns both channels restricted to [start, start+length). The
// bounds must already satisfy the view range invariants.
func (s *Store) Slice(start, length int) (left, right []int16) {
	end := start + length
	return s.left[start:end:end], s.right[start:end:end]
}

// Duration converts a sample count into playback time at the store's rate.
func (s *Store) Duration(n int) time.Duration {
	return time.Duration(int64(n) * int64(time.Second) / int64(s.format.SampleRate))
}
