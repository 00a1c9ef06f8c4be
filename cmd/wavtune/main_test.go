// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	gowav "github.com/go-audio/wav"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
	"gotest.tools/fs"

	"github.com/ik5/wavtune/audio"
	"github.com/ik5/wavtune/formats/wav"
	"github.com/ik5/wavtune/internal/audiotest"
)

func TestRunTunesFile(t *testing.T) {
	dir := fs.NewDir(t, "wavtune",
		fs.WithFile("test.wav", string(audiotest.Mono16(100, 100, 100, 100, 100, 100))))
	defer dir.Remove()

	var stderr bytes.Buffer
	err := run([]string{
		"-in", dir.Join("test.wav"),
		"-out", dir.Join("converted.wav"),
		"-parts", "3", "-part", "2", "-bias", "50",
		"-order", "little",
	}, &stderr)
	assert.NilError(t, err)

	samples, _, err := wav.Codec{}.ExtractFile(dir.Join("converted.wav"))
	assert.NilError(t, err)
	assert.DeepEqual(t, samples, audio.Samples{100, 100, 150, 150, 100, 100})

	assert.Assert(t, is.Contains(stderr.String(), "format: 16 bits, PCM uncompressed"))
	assert.Assert(t, is.Contains(stderr.String(), "Tuning is done"))
	assert.Assert(t, is.Contains(stderr.String(), "biased samples [2, 4) of 6 by 50"))
}

func TestRunDefaultsMatchStockRun(t *testing.T) {
	if wav.HostByteOrder() != wav.LittleEndian {
		t.Skip("fixture is a RIFF file")
	}

	dir := fs.NewDir(t, "wavtune",
		fs.WithDir("storage",
			fs.WithFile("test.wav", string(audiotest.Mono16(1000, 1000, 1000, 1000)))))
	defer dir.Remove()

	wd, err := os.Getwd()
	assert.NilError(t, err)
	assert.NilError(t, os.Chdir(dir.Path()))
	defer os.Chdir(wd)

	assert.NilError(t, run([]string{"-q"}, new(bytes.Buffer)))

	f, err := os.Open("storage/converted.wav")
	assert.NilError(t, err)
	defer f.Close()

	dec := gowav.NewDecoder(f)
	assert.Assert(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	assert.NilError(t, err)
	assert.DeepEqual(t, buf.Data, []int{32072, 32072, 1000, 1000})
}

func TestRunRewriteSizes(t *testing.T) {
	data := audiotest.WAV{Samples: []int16{1, 2}, DataBytes: audiotest.Int32(8)}.Bytes()
	dir := fs.NewDir(t, "wavtune", fs.WithFile("in.wav", string(data)))
	defer dir.Remove()

	assert.NilError(t, run([]string{
		"-in", dir.Join("in.wav"), "-out", dir.Join("out.wav"),
		"-parts", "1", "-part", "1", "-bias", "0",
		"-order", "little", "-rewrite-sizes", "-q",
	}, new(bytes.Buffer)))

	h, err := wav.Codec{}.ParseHeader(readFile(t, dir.Join("out.wav")))
	assert.NilError(t, err)
	assert.Equal(t, h.DataBytes, int32(4))
}

func TestRunStrictRejectsTruncated(t *testing.T) {
	data := audiotest.WAV{Samples: []int16{1, 2}, DataBytes: audiotest.Int32(8)}.Bytes()
	dir := fs.NewDir(t, "wavtune", fs.WithFile("in.wav", string(data)))
	defer dir.Remove()

	err := run([]string{
		"-in", dir.Join("in.wav"), "-out", dir.Join("out.wav"),
		"-order", "little", "-strict", "-q",
	}, new(bytes.Buffer))
	assert.Assert(t, errors.Is(err, wav.ErrTruncatedData))
}

func TestRunErrors(t *testing.T) {
	dir := fs.NewDir(t, "wavtune",
		fs.WithFile("in.wav", string(audiotest.Mono16(1, 2))),
		fs.WithFile("rifx.wav", string(audiotest.WAV{ChunkID: "RIFX", Samples: []int16{1}}.Bytes())))
	defer dir.Remove()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"bad partition", []string{"-in", dir.Join("in.wav"), "-out", dir.Join("o.wav"), "-parts", "2", "-part", "0", "-order", "little"}, audio.ErrInvalidPartition},
		{"wrong byte order", []string{"-in", dir.Join("rifx.wav"), "-out", dir.Join("o.wav"), "-order", "little"}, wav.ErrFormatMismatch},
		{"missing input", []string{"-in", dir.Join("nope.wav"), "-out", dir.Join("o.wav")}, wav.ErrIO},
		{"bias above int32", []string{"-in", dir.Join("in.wav"), "-out", dir.Join("o.wav"), "-bias", "4294967396", "-order", "little"}, errBiasRange},
		{"bias below int32", []string{"-in", dir.Join("in.wav"), "-out", dir.Join("o.wav"), "-bias", "-2147483649", "-order", "little"}, errBiasRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, new(bytes.Buffer))
			assert.Assert(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, statErr := os.Stat(dir.Join("o.wav"))
	assert.Assert(t, os.IsNotExist(statErr), "no output may be written on failure")

	assert.ErrorContains(t, run([]string{"-order", "sideways"}, new(bytes.Buffer)), "unknown byte order")
	assert.Assert(t, run([]string{"-no-such-flag"}, new(bytes.Buffer)) != nil)
}

func TestRunBiasAtInt32Limit(t *testing.T) {
	dir := fs.NewDir(t, "wavtune", fs.WithFile("in.wav", string(audiotest.Mono16(0, 0))))
	defer dir.Remove()

	assert.NilError(t, run([]string{
		"-in", dir.Join("in.wav"), "-out", dir.Join("out.wav"),
		"-parts", "1", "-part", "1", "-bias", "2147483647",
		"-order", "little", "-q",
	}, new(bytes.Buffer)))

	samples, _, err := wav.Codec{}.ExtractFile(dir.Join("out.wav"))
	assert.NilError(t, err)
	assert.DeepEqual(t, samples, audio.Samples{-1, -1})
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer

	assert.Equal(t, exitCode(nil, &stderr), 0)
	assert.Equal(t, exitCode(run([]string{"-h"}, &stderr), &stderr), 0)
	assert.Assert(t, !strings.Contains(stderr.String(), "ERROR"))

	stderr.Reset()
	assert.Equal(t, exitCode(wav.ErrNotWavFormat, &stderr), 1)
	assert.Equal(t, stderr.String(), "ERROR: not a WAV file\n")
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	b, err := os.ReadFile(path)
	assert.NilError(t, err)

	return b
}
