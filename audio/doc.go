// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample buffer used while tuning.
//
// # Samples
//
// Samples holds a 16-bit PCM stream widened to int32:
//
//	s := audio.FromInt16([]int16{100, 200, 300, 400})
//
// Working at 32 bits lets a transform move samples outside the int16 range
// without losing information; narrowing happens only when the buffer is
// converted back with Int16 or written by formats/wav.
//
// # Segment Bias
//
// ApplyBias splits the buffer into equal parts and adds a value to every
// sample of one of them:
//
//	err := s.ApplyBias(2, 1, -100) // first half
//
// Parts are numbered from 1. The part length is len(s)/numParts, rounded
// down, and the leftover samples at the end are never touched. An
// out-of-range part fails with ErrInvalidPartition and leaves the buffer
// unchanged.
//
// # go-audio Interop
//
// IntBuffer converts the samples into a *github.com/go-audio/audio.IntBuffer
// for use with go-audio encoders and tools.
package audio
