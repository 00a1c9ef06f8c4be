// SPDX-License-Identifier: EPL-2.0

// This tool prints the samples of a 16-bit PCM WAV file and can plot them
// with gnuplot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavtune/formats/wav"
	"github.com/ik5/wavtune/plot"
)

var errMissingPath = errors.New("missing path argument")

func main() {
	os.Exit(exitCode(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr), os.Stderr))
}

// exitCode reports err on stderr and maps it to the process exit status.
// Asking for -h is not a failure.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if errors.Is(err, errMissingPath) {
		fmt.Fprintln(stderr, "usage: wavdump [-order host|little|big] [-plot data.temp [-gnuplot]] <file.wav>")
	}

	fmt.Fprintf(stderr, "ERROR: %v\n", err)

	return 1
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("wavdump", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	order := flagSet.String("order", "host", "accepted byte order: host, little (RIFF) or big (RIFX)")
	plotFile := flagSet.String("plot", "", "also write the absolute sample values as an \"x y\" data file")
	gnuplot := flagSet.Bool("gnuplot", false, "open the -plot data file in gnuplot")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}
	path := flagSet.Arg(0)

	byteOrder, err := wav.ParseByteOrder(*order)
	if err != nil {
		return err
	}

	codec := wav.Codec{
		Order:          byteOrder,
		Logger:         wav.NewStdLogger(log.New(stderr, "", 0)),
		AllowTruncated: true,
		ReadToEOF:      true,
	}

	samples, header, err := codec.ExtractFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	abs := samples.Abs()

	var sb strings.Builder
	for _, v := range abs {
		fmt.Fprintf(&sb, "%d, ", v)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Total bytes in data:\t%d\n", header.DataBytes)
	fmt.Fprintf(&sb, "Total Samples in wav:\t%d\n", len(samples))

	if _, err := io.WriteString(stdout, sb.String()); err != nil {
		return err
	}

	if *plotFile == "" {
		return nil
	}

	if err := writePlotData(*plotFile, abs.IntBuffer(header.Format())); err != nil {
		return err
	}

	if !*gnuplot {
		return nil
	}

	plotter, err := plot.NewPlotter()
	if err != nil {
		return err
	}

	return plotter.Run(ctx, plot.Script{Title: path, DataFile: *plotFile}.Commands())
}

func writePlotData(path string, buf *goaudio.IntBuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return plot.WriteSeries(f, buf)
}
