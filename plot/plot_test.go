// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSeries(t *testing.T) {
	t.Parallel()

	buf := &goaudio.IntBuffer{Data: []int{5, -3, 0}}
	out := new(bytes.Buffer)

	require.NoError(t, WriteSeries(out, buf))
	assert.Equal(t, "0 5\n1 -3\n2 0\n", out.String())
}

func TestWriteSeries_Empty(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, WriteSeries(new(bytes.Buffer), nil), ErrNoData)
	assert.ErrorIs(t, WriteSeries(new(bytes.Buffer), &goaudio.IntBuffer{}), ErrNoData)
}

func TestScript_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script Script
		want   []string
	}{
		{
			name:   "title and default style",
			script: Script{Title: "in.wav", DataFile: "data.temp"},
			want:   []string{`set title "in.wav"`, "plot 'data.temp' with line"},
		},
		{
			name:   "no title",
			script: Script{DataFile: "x.dat", Style: "points"},
			want:   []string{"plot 'x.dat' with points"},
		},
		{
			name:   "quote in file name",
			script: Script{DataFile: "/tmp/it's here/data.temp"},
			want:   []string{"plot '/tmp/it''s here/data.temp' with line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.script.Commands())
		})
	}
}

func TestWriteCommands(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	require.NoError(t, WriteCommands(out, []string{"set title \"a\"", "plot 'b' with line"}))
	assert.Equal(t, "set title \"a\" \nplot 'b' with line \n", out.String())
}

func TestPlotter_Run(t *testing.T) {
	t.Parallel()

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	// stand-in plotter that records what it is fed
	dst := filepath.Join(t.TempDir(), "commands.txt")
	p := &Plotter{Path: sh, Args: []string{"-c", "cat > " + dst}}

	require.NoError(t, p.Run(context.Background(), []string{"plot 'a' with line"}))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "plot 'a' with line \n", string(got))
}

func TestPlotter_RunFailure(t *testing.T) {
	t.Parallel()

	p := &Plotter{Path: filepath.Join(t.TempDir(), "no-such-gnuplot")}
	assert.Error(t, p.Run(context.Background(), nil))
}
