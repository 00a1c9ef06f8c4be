// SPDX-License-Identifier: EPL-2.0

// Package wavtune adjusts the level of one part of a 16-bit PCM WAV file.
//
// A file is read, its header validated, its samples split into equal parts
// and a fixed bias added to one of them. The result is written next to the
// original with the original header.
//
// # Quick Start
//
//	cfg := wavtune.DefaultConfig()
//	cfg.Input = "in.wav"
//	cfg.Output = "out.wav"
//	cfg.Parts, cfg.Part, cfg.Bias = 4, 2, 500
//
//	res, err := wavtune.TuneFile(cfg)
//
// Bias is applied on 32-bit working samples without clamping. When the file
// is written each sample is truncated to 16 bits, so values that leave the
// int16 range wrap around.
//
// # Building Blocks
//
// TuneFile is a thin pipeline over the subpackages:
//   - formats/wav: header parsing, sample extraction and export
//   - audio: the Samples buffer and the segment bias
//   - plot: feeding sample series to gnuplot
//
// # Concurrency
//
// Every call opens and closes its own files. Two calls writing the same
// output concurrently race; coordinating them is up to the caller.
package wavtune
