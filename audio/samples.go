// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavtune/utils"
)

// Samples is a decoded 16-bit PCM stream widened to 32 bits, so a bias can
// push values outside the int16 range until the buffer is narrowed on export.
//
// A Samples value is owned by whoever extracted it; nothing else keeps a
// reference to the backing array.
type Samples []int32

// FromInt16 widens a slice of 16-bit samples.
func FromInt16(src []int16) Samples {
	out := make(Samples, len(src))
	for i, v := range src {
		out[i] = int32(v)
	}

	return out
}

// Len returns the number of samples in the buffer.
func (s Samples) Len() int { return len(s) }

// Segment returns the half-open range [start, end) covered by the 1-based
// partIndex when s is split into numParts equal parts. Trailing samples that
// do not fill a whole part belong to no segment.
func (s Samples) Segment(numParts, partIndex int) (start, end int, err error) {
	if numParts <= 0 || partIndex < 1 || partIndex > numParts {
		return 0, 0, fmt.Errorf("%w: part %d of %d", ErrInvalidPartition, partIndex, numParts)
	}

	size := len(s) / numParts
	start = (partIndex - 1) * size

	return start, start + size, nil
}

// ApplyBias adds bias to every sample of the selected segment in place.
// Results are not clamped.
func (s Samples) ApplyBias(numParts, partIndex int, bias int32) error {
	start, end, err := s.Segment(numParts, partIndex)
	if err != nil {
		return err
	}

	for i := start; i < end; i++ {
		s[i] += bias
	}

	return nil
}

// Abs returns a new buffer holding the absolute value of each sample.
func (s Samples) Abs() Samples {
	out := make(Samples, len(s))
	for i, v := range s {
		out[i] = utils.AbsInt32(v)
	}

	return out
}

// Int16 narrows the buffer back to 16 bits. With saturate false values wrap
// around, which is what gets written to disk.
func (s Samples) Int16(saturate bool) []int16 {
	out := make([]int16, len(s))
	for i, v := range s {
		if saturate {
			out[i] = utils.ClampInt16(v)
		} else {
			out[i] = utils.Int32ToInt16(v)
		}
	}

	return out
}

// IntBuffer exposes the samples as a go-audio buffer so they can be handed
// to go-audio encoders and analysis code.
func (s Samples) IntBuffer(format *goaudio.Format) *goaudio.IntBuffer {
	data := make([]int, len(s))
	for i, v := range s {
		data[i] = int(v)
	}

	return &goaudio.IntBuffer{
		Format:         format,
		Data:           data,
		SourceBitDepth: 16,
	}
}
