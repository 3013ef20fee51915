// Package decode turns audio files into a validated sample store.
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"

	"github.com/olivier-w/wavescope/internal/media"
	"github.com/olivier-w/wavescope/internal/samples"
)

// audioDecoder is implemented by all format-specific decoders. Format must
// be answerable from the header alone; ReadAll is only called once the
// format has been accepted.
type audioDecoder interface {
	Format() samples.Format
	ReadAll() ([][]int16, error)
}

type openFunc func(f *os.File) (audioDecoder, error)

var decoders = map[string]openFunc{
	".wav":  newWAVDecoder,
	".aif":  newAIFFDecoder,
	".aiff": newAIFFDecoder,
	".flac": newFLACDecoder,
	".mp3":  newMP3Decoder,
	".ogg":  newOGGDecoder,
}

// Open decodes the file at path. The stream format is validated before any
// PCM data is read, so unsupported files fail without being loaded.
func Open(path string) (*samples.Store, error) {
	ext := strings.ToLower(filepath.Ext(path))
	open, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, ext, media.SupportedExtsList())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := open(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	format := dec.Format()
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	channels, err := dec.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	store, err := samples.New(format, channels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	log.Printf("decoded %s: %s, %d samples per channel", path, format, store.Len())
	return store, nil
}

// deinterleave splits interleaved integer PCM into per-channel sequences. A
// trailing partial frame is reported, not dropped.
func deinterleave(data []int, channels int) ([][]int16, error) {
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not fill %d-channel frames", samples.ErrMalformedInput, len(data), channels)
	}
	frames := len(data) / channels
	out := make([][]int16, channels)
	for ch := range out {
		out[ch] = make([]int16, frames)
	}
	for i := range frames {
		for ch := range channels {
			out[ch][i] = int16(data[i*channels+ch])
		}
	}
	return out, nil
}

// --- WAV decoder ---

const (
	wavFormatPCM        = 1
	wavFormatIEEEFloat  = 3
	wavFormatExtensible = 0xFFFE
)

type wavDecoder struct {
	dec    *wav.Decoder
	format samples.Format
}

func newWAVDecoder(f *os.File) (audioDecoder, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrInvalidFile)
	}

	bitDepth := int(dec.BitDepth)
	var enc samples.Encoding
	switch dec.WavAudioFormat {
	case wavFormatPCM, wavFormatExtensible:
		// 8-bit WAV is unsigned
		enc = samples.EncodingSignedInt
		if bitDepth == 8 {
			enc = samples.EncodingUnsignedInt
		}
	case wavFormatIEEEFloat:
		enc = samples.EncodingFloat
	default:
		return nil, fmt.Errorf("%w: WAV format tag 0x%04x", samples.ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	return &wavDecoder{
		dec: dec,
		format: samples.Format{
			Channels:   int(dec.NumChans),
			BitDepth:   bitDepth,
			Encoding:   enc,
			SampleRate: int(dec.SampleRate),
		},
	}, nil
}

func (d *wavDecoder) Format() samples.Format { return d.format }

func (d *wavDecoder) ReadAll() ([][]int16, error) {
	buf, err := d.dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	return deinterleave(buf.Data, d.format.Channels)
}

// --- AIFF decoder ---

type aiffDecoder struct {
	dec    *aiff.Decoder
	format samples.Format
}

func newAIFFDecoder(f *os.File) (audioDecoder, error) {
	dec := aiff.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not an AIFF file", ErrInvalidFile)
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, fmt.Errorf("%w: missing AIFF COMM chunk", ErrInvalidFile)
	}

	return &aiffDecoder{
		dec: dec,
		format: samples.Format{
			Channels:   format.NumChannels,
			BitDepth:   int(dec.BitDepth),
			Encoding:   samples.EncodingSignedInt,
			SampleRate: format.SampleRate,
		},
	}, nil
}

func (d *aiffDecoder) Format() samples.Format { return d.format }

func (d *aiffDecoder) ReadAll() ([][]int16, error) {
	chunk := &goaudio.IntBuffer{
		Data:   make([]int, 8192),
		Format: d.dec.Format(),
	}
	var data []int
	for {
		n, err := d.dec.PCMBuffer(chunk)
		data = append(data, chunk.Data[:n]...)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading AIFF PCM data: %w", err)
		}
		if n == 0 || err != nil {
			break
		}
	}
	return deinterleave(data, d.format.Channels)
}

// --- FLAC decoder ---

type flacDecoder struct {
	stream *flac.Stream
	format samples.Format
}

func newFLACDecoder(f *os.File) (audioDecoder, error) {
	stream, err := flac.NewSeek(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding FLAC: %w", ErrInvalidFile, err)
	}

	info := stream.Info
	return &flacDecoder{
		stream: stream,
		format: samples.Format{
			Channels:   int(info.NChannels),
			BitDepth:   int(info.BitsPerSample),
			Encoding:   samples.EncodingSignedInt,
			SampleRate: int(info.SampleRate),
		},
	}, nil
}

func (d *flacDecoder) Format() samples.Format { return d.format }

func (d *flacDecoder) ReadAll() ([][]int16, error) {
	channels := d.format.Channels
	out := make([][]int16, channels)
	if total := d.stream.Info.NSamples; total > 0 {
		for ch := range out {
			out[ch] = make([]int16, 0, total)
		}
	}

	for {
		frame, err := d.stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading FLAC frame: %w", err)
		}
		if len(frame.Subframes) != channels {
			return nil, fmt.Errorf("%w: FLAC frame with %d subframes in %d-channel stream", samples.ErrMalformedInput, len(frame.Subframes), channels)
		}
		for ch, sub := range frame.Subframes {
			for _, s := range sub.Samples[:sub.NSamples] {
				out[ch] = append(out[ch], int16(s))
			}
		}
	}
	return out, nil
}

// --- MP3 decoder ---

// go-mp3 always produces 16-bit little-endian stereo.
type mp3Decoder struct {
	dec *mp3.Decoder
}

func newMP3Decoder(f *os.File) (audioDecoder, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding MP3: %w", ErrInvalidFile, err)
	}
	return &mp3Decoder{dec: dec}, nil
}

func (d *mp3Decoder) Format() samples.Format {
	return samples.Format{
		Channels:   2,
		BitDepth:   16,
		Encoding:   samples.EncodingSignedInt,
		SampleRate: d.dec.SampleRate(),
	}
}

func (d *mp3Decoder) ReadAll() ([][]int16, error) {
	raw, err := io.ReadAll(d.dec)
	if err != nil {
		return nil, fmt.Errorf("reading MP3 PCM data: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d PCM bytes do not fill stereo frames", samples.ErrMalformedInput, len(raw))
	}

	frames := len(raw) / 4
	left := make([]int16, frames)
	right := make([]int16, frames)
	for i := range frames {
		left[i] = int16(binary.LittleEndian.Uint16(raw[i*4:]))
		right[i] = int16(binary.LittleEndian.Uint16(raw[i*4+2:]))
	}
	return [][]int16{left, right}, nil
}

// --- OGG Vorbis decoder ---

// Vorbis decodes to float32 frames; the store refuses those, so ReadAll is
// never reached for a valid Ogg file.
type oggDecoder struct {
	reader *oggvorbis.Reader
}

func newOGGDecoder(f *os.File) (audioDecoder, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding OGG: %w", ErrInvalidFile, err)
	}
	return &oggDecoder{reader: reader}, nil
}

func (d *oggDecoder) Format() samples.Format {
	return samples.Format{
		Channels:   d.reader.Channels(),
		BitDepth:   32,
		Encoding:   samples.EncodingFloat,
		SampleRate: d.reader.SampleRate(),
	}
}

func (d *oggDecoder) ReadAll() ([][]int16, error) {
	return nil, fmt.Errorf("%w: Vorbis decodes to float samples", samples.ErrUnsupportedFormat)
}
