// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"
	"os"

	"github.com/ik5/wavtune/audio"
	"github.com/ik5/wavtune/utils"
)

// Export writes header followed by samples narrowed to 16 bits. Values out of
// the int16 range wrap around. The header is not validated against the
// buffer: unless RewriteSizes is set its size fields are written as given.
func (c Codec) Export(w io.Writer, header []byte, samples audio.Samples) error {
	if len(header) < HeaderSize {
		return ioError("writing header", io.ErrShortBuffer)
	}

	out := make([]byte, HeaderSize)
	copy(out, header[:HeaderSize])

	order := c.Order.Binary()
	if c.RewriteSizes {
		dataBytes := uint32(len(samples) * 2)
		order.PutUint32(out[4:8], 36+dataBytes)
		order.PutUint32(out[40:44], dataBytes)
	}

	if _, err := w.Write(out); err != nil {
		return ioError("writing header", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8KB at a time
	const chunkSize = 4096
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			order.PutUint16(buf[j*2:j*2+2], uint16(utils.Int32ToInt16(s)))
		}

		if _, err := w.Write(buf); err != nil {
			return ioError("writing samples", err)
		}
	}

	return nil
}

// ExportFile copies the header of srcPath verbatim into dstPath, followed by
// samples. dstPath is created or truncated.
func (c Codec) ExportFile(samples audio.Samples, srcPath, dstPath string) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return ioError("opening source", err)
	}

	header := make([]byte, HeaderSize)
	_, err = io.ReadFull(src, header)
	src.Close()
	if err != nil {
		return ioError("reading source header", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return ioError("creating output", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = ioError("closing output", cerr)
		}
	}()

	return c.Export(dst, header, samples)
}
