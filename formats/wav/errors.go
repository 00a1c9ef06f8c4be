// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrIO                  = errors.New("wav I/O error")
	ErrFormatMismatch      = errors.New("RIFF id does not match byte order")
	ErrNotWavFormat        = errors.New("not a WAV file")
	ErrUnsupportedFormat   = errors.New("only 16-byte PCM format block supported")
	ErrUnsupportedBitDepth = errors.New("only PCM 16-bit supported")
	ErrTruncatedData       = errors.New("sample data shorter than header declares")
)

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
