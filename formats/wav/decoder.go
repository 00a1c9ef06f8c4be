// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavtune/audio"
)

// ExtractSamples validates the header at the start of r and decodes the
// 16-bit samples that follow it. Bytes past the declared data size are
// ignored unless ReadToEOF is set.
func (c Codec) ExtractSamples(r io.Reader) (audio.Samples, Header, error) {
	h, _, err := c.ReadHeader(r)
	if err != nil {
		return nil, Header{}, err
	}

	c.logf("%s", h.Summary())
	c.logf("WAV format")

	want := h.SampleCount()
	src := bufio.NewReader(r)

	var payload []byte
	if c.ReadToEOF {
		payload, err = io.ReadAll(src)
	} else {
		payload, err = io.ReadAll(io.LimitReader(src, int64(want)*2))
	}
	if err != nil {
		return nil, Header{}, ioError("reading samples", err)
	}

	// a dangling odd byte is not a sample
	got := len(payload) / 2
	if got < want {
		if !c.AllowTruncated {
			return nil, Header{}, fmt.Errorf("%w: header declares %d samples, found %d", ErrTruncatedData, want, got)
		}

		c.logf("data truncated: header declares %d samples, found %d", want, got)
	}

	order := c.Order.Binary()
	samples := make(audio.Samples, got)
	for i := range samples {
		samples[i] = int32(int16(order.Uint16(payload[2*i : 2*i+2])))
	}

	return samples, h, nil
}

// ExtractFile opens path and runs ExtractSamples on it.
func (c Codec) ExtractFile(path string) (audio.Samples, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, ioError("opening input", err)
	}
	defer f.Close()

	return c.ExtractSamples(f)
}
