// SPDX-License-Identifier: EPL-2.0

package wavtune

import (
	"fmt"

	"github.com/ik5/wavtune/audio"
	"github.com/ik5/wavtune/formats/wav"
)

// Config describes a single tuning run.
type Config struct {
	// Input is the WAV file to read. Output is written from Input's header
	// and the tuned samples, and may equal Input.
	Input  string
	Output string

	// Parts splits the samples into equal segments; Part (1-based) picks
	// the one that receives Bias.
	Parts int
	Part  int
	Bias  int32

	Codec wav.Codec
}

// DefaultConfig returns the settings of the stock tuning run: the first half
// of storage/test.wav is lowered by 100000 and written to
// storage/converted.wav.
func DefaultConfig() Config {
	return Config{
		Input:  "storage/test.wav",
		Output: "storage/converted.wav",
		Parts:  2,
		Part:   1,
		Bias:   -100000,
		Codec:  wav.DefaultCodec(),
	}
}

// Result reports what TuneFile did.
type Result struct {
	Header  wav.Header
	Samples audio.Samples
	// Start and End delimit the biased samples.
	Start, End int
}

// TuneFile reads cfg.Input, biases one segment of its samples and writes the
// result to cfg.Output.
//
// The steps are:
//  1. Validate the header and extract the samples
//  2. Add cfg.Bias to segment cfg.Part of cfg.Parts
//  3. Write the input header followed by the samples, narrowed to 16 bits
//
// Nothing is written unless the input validates and the partition is valid.
func TuneFile(cfg Config) (Result, error) {
	samples, header, err := cfg.Codec.ExtractFile(cfg.Input)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	start, end, err := samples.Segment(cfg.Parts, cfg.Part)
	if err != nil {
		return Result{}, err
	}

	if err := samples.ApplyBias(cfg.Parts, cfg.Part, cfg.Bias); err != nil {
		return Result{}, err
	}

	if cfg.Codec.Logger != nil {
		cfg.Codec.Logger.Diagnostic("Tuning is done")
	}

	if err := cfg.Codec.ExportFile(samples, cfg.Input, cfg.Output); err != nil {
		return Result{}, fmt.Errorf("%s: %w", cfg.Output, err)
	}

	return Result{Header: header, Samples: samples, Start: start, End: end}, nil
}
