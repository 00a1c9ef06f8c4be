// SPDX-License-Identifier: EPL-2.0

// This tool adds a bias to one segment of a 16-bit PCM WAV file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/ik5/wavtune"
	"github.com/ik5/wavtune/formats/wav"
)

var errBiasRange = errors.New("bias out of range")

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stderr), os.Stderr))
}

// exitCode reports err on stderr and maps it to the process exit status.
// Asking for -h is not a failure.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}

	fmt.Fprintf(stderr, "ERROR: %v\n", err)

	return 1
}

func run(args []string, stderr io.Writer) error {
	cfg := wavtune.DefaultConfig()

	flagSet := flag.NewFlagSet("wavtune", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	flagSet.StringVar(&cfg.Input, "in", cfg.Input, "WAV file to tune")
	flagSet.StringVar(&cfg.Output, "out", cfg.Output, "where to write the tuned file")
	flagSet.IntVar(&cfg.Parts, "parts", cfg.Parts, "number of equal segments to split the samples into")
	flagSet.IntVar(&cfg.Part, "part", cfg.Part, "1-based segment to apply the bias to")
	bias := flagSet.Int("bias", int(cfg.Bias), "value added to every sample of the segment")
	order := flagSet.String("order", "host", "accepted byte order: host, little (RIFF) or big (RIFX)")
	strict := flagSet.Bool("strict", false, "fail when the file holds fewer samples than its header declares")
	rewrite := flagSet.Bool("rewrite-sizes", false, "recompute the header size fields from the written samples")
	quiet := flagSet.Bool("q", false, "don't print diagnostics")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	byteOrder, err := wav.ParseByteOrder(*order)
	if err != nil {
		return err
	}

	var logger wav.Logger = wav.NewStdLogger(log.New(stderr, "", 0))
	if *quiet {
		logger = wav.NopLogger{}
	}

	if *bias < math.MinInt32 || *bias > math.MaxInt32 {
		return fmt.Errorf("%w: %d", errBiasRange, *bias)
	}

	cfg.Bias = int32(*bias)
	cfg.Codec = wav.Codec{
		Order:          byteOrder,
		Logger:         logger,
		AllowTruncated: !*strict,
		RewriteSizes:   *rewrite,
	}

	res, err := wavtune.TuneFile(cfg)
	if err != nil {
		return err
	}

	logger.Diagnostic("wrote %s: biased samples [%d, %d) of %d by %d",
		cfg.Output, res.Start, res.End, len(res.Samples), cfg.Bias)

	return nil
}
