package samples

import "fmt"

// Encoding describes how a decoder represents individual samples.
type Encoding uint8

const (
	EncodingSignedInt Encoding = iota
	EncodingUnsignedInt
	EncodingFloat
)

func (e Encoding) String() string {
	switch e {
	case EncodingSignedInt:
		return "signed int"
	case EncodingUnsignedInt:
		return "unsigned int"
	case EncodingFloat:
		return "float"
	}
	return fmt.Sprintf("encoding(%d)", uint8(e))
}

// Format is the stream metadata a decoder reports before any PCM is read.
type Format struct {
	Channels   int
	BitDepth   int
	Encoding   Encoding
	SampleRate int
}

// Supported is the only profile the store accepts.
var Supported = Format{Channels: 2, BitDepth: 16, Encoding: EncodingSignedInt}

// Validate reports ErrUnsupportedFormat unless f is stereo 16-bit signed PCM.
// The sample rate is informational and not checked beyond being positive.
func (f Format) Validate() error {
	switch {
	case f.Channels != Supported.Channels:
		return fmt.Errorf("%w: %d channels (want %d)", ErrUnsupportedFormat, f.Channels, Supported.Channels)
	case f.BitDepth != Supported.BitDepth:
		return fmt.Errorf("%w: %d-bit samples (want %d)", ErrUnsupportedFormat, f.BitDepth, Supported.BitDepth)
	case f.Encoding != Supported.Encoding:
		return fmt.Errorf("%w: %s encoding (want %s)", ErrUnsupportedFormat, f.Encoding, Supported.Encoding)
	case f.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, f.SampleRate)
	}
	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%d ch, %d-bit %s, %d Hz", f.Channels, f.BitDepth, f.Encoding, f.SampleRate)
}
