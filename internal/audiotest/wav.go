// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds canonical WAV files for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV describes a canonical 44-byte header WAV file. Zero values are filled
// in by Bytes with the usual mono 16-bit PCM defaults, and any field may be
// overridden to produce a broken file.
type WAV struct {
	ChunkID         string
	WaveFmt         string
	DataID          string
	FormatBlockSize int32
	AudioFormat     int16
	Channels        int16
	SampleRate      int32
	BitsPerSample   int16

	// DataBytes overrides the declared payload size when non-nil.
	DataBytes *int32

	Order   binary.ByteOrder
	Samples []int16
	// Trailer is appended after the samples, verbatim.
	Trailer []byte
}

// Mono16 returns a little-endian 8 kHz mono 16-bit file holding samples.
func Mono16(samples ...int16) []byte {
	return WAV{Samples: samples}.Bytes()
}

// Int32 is a helper for setting DataBytes.
func Int32(v int32) *int32 { return &v }

func (w WAV) Bytes() []byte {
	if w.ChunkID == "" {
		w.ChunkID = "RIFF"
	}
	if w.WaveFmt == "" {
		w.WaveFmt = "WAVEfmt "
	}
	if w.DataID == "" {
		w.DataID = "data"
	}
	if w.FormatBlockSize == 0 {
		w.FormatBlockSize = 16
	}
	if w.AudioFormat == 0 {
		w.AudioFormat = 1
	}
	if w.Channels == 0 {
		w.Channels = 1
	}
	if w.SampleRate == 0 {
		w.SampleRate = 8000
	}
	if w.BitsPerSample == 0 {
		w.BitsPerSample = 16
	}
	if w.Order == nil {
		w.Order = binary.LittleEndian
	}

	dataBytes := int32(len(w.Samples) * 2)
	if w.DataBytes != nil {
		dataBytes = *w.DataBytes
	}

	blockAlign := w.Channels * (w.BitsPerSample / 8)
	byteRate := w.SampleRate * int32(blockAlign)

	buf := new(bytes.Buffer)
	buf.WriteString(w.ChunkID)
	binary.Write(buf, w.Order, 36+dataBytes)
	buf.WriteString(w.WaveFmt)
	binary.Write(buf, w.Order, w.FormatBlockSize)
	binary.Write(buf, w.Order, w.AudioFormat)
	binary.Write(buf, w.Order, w.Channels)
	binary.Write(buf, w.Order, w.SampleRate)
	binary.Write(buf, w.Order, byteRate)
	binary.Write(buf, w.Order, blockAlign)
	binary.Write(buf, w.Order, w.BitsPerSample)
	buf.WriteString(w.DataID)
	binary.Write(buf, w.Order, dataBytes)

	for _, s := range w.Samples {
		binary.Write(buf, w.Order, s)
	}
	buf.Write(w.Trailer)

	return buf.Bytes()
}
