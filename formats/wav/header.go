// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	goaudio "github.com/go-audio/audio"
)

// HeaderSize is the size of the canonical PCM WAV header.
const HeaderSize = 44

const (
	waveFmtID = "WAVEfmt "
	dataID    = "data"

	pcmFormatBlockSize = 16
	pcmBitsPerSample   = 16
	pcmAudioFormat     = 1
)

// ByteOrder selects which flavour of the container is accepted: RIFF files
// are little-endian and RIFX files big-endian.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// HostByteOrder probes the byte order of the running machine.
func HostByteOrder() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return LittleEndian
	}

	return BigEndian
}

// ChunkID is the magic every file in this byte order starts with.
func (o ByteOrder) ChunkID() string {
	if o == BigEndian {
		return "RIFX"
	}

	return "RIFF"
}

func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big endian"
	}

	return "little endian"
}

// Header mirrors the 44 bytes at the start of a canonical WAV file, field
// for field and without padding.
type Header struct {
	ChunkID         [4]byte
	TotalLength     int32
	WaveFmt         [8]byte
	FormatBlockSize int32
	AudioFormat     int16
	NumChannels     int16
	SampleRate      int32
	ByteRate        int32
	BlockAlign      int16
	BitsPerSample   int16
	DataID          [4]byte
	DataBytes       int32
}

// SampleCount is the number of 16-bit samples the data chunk declares.
func (h Header) SampleCount() int {
	if h.BitsPerSample < 8 || h.DataBytes < 0 {
		return 0
	}

	return int(h.DataBytes) / (int(h.BitsPerSample) / 8)
}

// Format returns the go-audio description of the stream.
func (h Header) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(h.NumChannels),
		SampleRate:  int(h.SampleRate),
	}
}

// Summary renders the header the way it is reported to a Logger.
func (h Header) Summary() string {
	kind := "PCM"
	if h.FormatBlockSize != pcmFormatBlockSize {
		kind = fmt.Sprintf("not PCM (%d)", h.FormatBlockSize)
	}

	compression := "uncompressed"
	if h.AudioFormat != pcmAudioFormat {
		compression = "compressed"
	}

	return fmt.Sprintf("format: %d bits, %s %s, channel %d, freq %d, %d bytes per sec, %d bytes by capture, %d bits per sample",
		h.FormatBlockSize, kind, compression, h.NumChannels, h.SampleRate, h.ByteRate, h.BlockAlign, h.BitsPerSample)
}

// Codec reads and writes canonical 16-bit PCM WAV files in one byte order.
// Each call opens and closes its own files; callers that share a path
// between goroutines must serialise access themselves.
type Codec struct {
	Order  ByteOrder
	Logger Logger

	// AllowTruncated makes extraction return the samples actually present
	// when the file is shorter than the header declares, instead of failing.
	AllowTruncated bool

	// RewriteSizes makes export recompute the data size and total length
	// fields from the sample buffer. Otherwise the header is copied verbatim.
	RewriteSizes bool

	// ReadToEOF makes extraction decode every 16-bit value up to the end of
	// the input, including bytes past the declared data size.
	ReadToEOF bool
}

// DefaultCodec accepts files in the host byte order and discards diagnostics.
func DefaultCodec() Codec {
	return Codec{Order: HostByteOrder(), Logger: NopLogger{}}
}

func (c Codec) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Diagnostic(format, args...)
	}
}

// ParseHeader validates b with DefaultCodec.
func ParseHeader(b []byte) (Header, error) {
	return DefaultCodec().ParseHeader(b)
}

// ParseHeader decodes and validates the first HeaderSize bytes of b.
// On failure the returned Header is always the zero value.
func (c Codec) ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ioError("reading header", io.ErrUnexpectedEOF)
	}

	var h Header
	if err := binary.Read(bytes.NewReader(b[:HeaderSize]), c.Order.Binary(), &h); err != nil {
		return Header{}, ioError("decoding header", err)
	}

	if want := c.Order.ChunkID(); string(h.ChunkID[:]) != want {
		return Header{}, fmt.Errorf("%w: got %q, want %q (%s)", ErrFormatMismatch, h.ChunkID[:], want, c.Order)
	}

	if string(h.WaveFmt[:]) != waveFmtID || string(h.DataID[:]) != dataID {
		return Header{}, ErrNotWavFormat
	}

	if h.FormatBlockSize != pcmFormatBlockSize {
		return Header{}, fmt.Errorf("%w: format block is %d bytes", ErrUnsupportedFormat, h.FormatBlockSize)
	}

	if h.BitsPerSample != pcmBitsPerSample {
		return Header{}, fmt.Errorf("%w: got %d bits per sample", ErrUnsupportedBitDepth, h.BitsPerSample)
	}

	return h, nil
}

// ReadHeader reads exactly HeaderSize bytes from r and validates them. The
// raw bytes are returned alongside the parsed header.
func (c Codec) ReadHeader(r io.Reader) (Header, []byte, error) {
	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Header{}, nil, ioError("reading header", err)
	}

	h, err := c.ParseHeader(raw)
	if err != nil {
		return Header{}, nil, err
	}

	return h, raw, nil
}

// ParseByteOrder accepts "host", "little"/"riff" or "big"/"rifx".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "host":
		return HostByteOrder(), nil
	case "little", "le", "riff":
		return LittleEndian, nil
	case "big", "be", "rifx":
		return BigEndian, nil
	}

	return LittleEndian, fmt.Errorf("unknown byte order %q", s)
}
