// SPDX-License-Identifier: EPL-2.0

// Package plot hands sample series to gnuplot.
//
// Data is written as a two-column, space separated text file of (x, y)
// pairs and gnuplot is driven by piping commands into its standard input:
//
//	f, _ := os.Create("data.temp")
//	plot.WriteSeries(f, buf)
//	f.Close()
//
//	p, _ := plot.NewPlotter()
//	err := p.Run(ctx, plot.Script{Title: "in.wav", DataFile: "data.temp"}.Commands())
package plot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	goaudio "github.com/go-audio/audio"
)

var (
	ErrGnuplotNotFound = errors.New("gnuplot not found")
	ErrNoData          = errors.New("no samples to plot")
)

// WriteSeries writes one "index value" line per sample of buf.
func WriteSeries(w io.Writer, buf *goaudio.IntBuffer) error {
	if buf == nil || len(buf.Data) == 0 {
		return ErrNoData
	}

	bw := bufio.NewWriter(w)
	for i, v := range buf.Data {
		if _, err := fmt.Fprintf(bw, "%d %d\n", i, v); err != nil {
			return fmt.Errorf("writing series: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing series: %w", err)
	}

	return nil
}

// Script describes a single line plot of a data file.
type Script struct {
	Title    string
	DataFile string
	// Style defaults to "line".
	Style string
}

func (s Script) Commands() []string {
	style := s.Style
	if style == "" {
		style = "line"
	}

	cmds := make([]string, 0, 2)
	if s.Title != "" {
		cmds = append(cmds, fmt.Sprintf("set title %q", s.Title))
	}

	// gnuplot writes a quote inside a single-quoted string as ''
	file := strings.ReplaceAll(s.DataFile, "'", "''")

	return append(cmds, fmt.Sprintf("plot '%s' with %s", file, style))
}

// Plotter runs an external gnuplot process.
type Plotter struct {
	Path string
	Args []string
}

// NewPlotter locates gnuplot on PATH. The plot window is kept open after
// the process exits.
func NewPlotter() (*Plotter, error) {
	path, err := exec.LookPath("gnuplot")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGnuplotNotFound, err)
	}

	return &Plotter{Path: path, Args: []string{"-persistent"}}, nil
}

// Run starts the plotter and writes commands to its standard input, one per
// line, then waits for it to exit.
func (p *Plotter) Run(ctx context.Context, commands []string) error {
	cmd := exec.CommandContext(ctx, p.Path, p.Args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening plotter stdin: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting plotter: %w", err)
	}

	writeErr := WriteCommands(stdin, commands)
	closeErr := stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("plotter: %w", err)
	}

	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("closing plotter stdin: %w", closeErr)
	}

	return nil
}

// WriteCommands writes each command on its own line.
func WriteCommands(w io.Writer, commands []string) error {
	for _, c := range commands {
		if _, err := fmt.Fprintf(w, "%s \n", c); err != nil {
			return fmt.Errorf("writing plot command: %w", err)
		}
	}

	return nil
}
