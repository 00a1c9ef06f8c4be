// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes canonical 16-bit PCM WAV files.
//
// Only the 44-byte canonical layout is understood: a RIFF (or RIFX) header,
// a 16-byte PCM fmt chunk and a data chunk, immediately followed by the
// samples. Files with extra chunks, compressed audio or a bit depth other
// than 16 are rejected.
//
// # Byte Order
//
// A Codec accepts a single byte order. RIFF files are little-endian and RIFX
// files big-endian; a codec configured for one rejects the other with
// ErrFormatMismatch. DefaultCodec probes the host:
//
//	codec := wav.DefaultCodec()
//	codec.Order = wav.BigEndian // only accept RIFX
//
// # Reading Samples
//
//	codec := wav.DefaultCodec()
//	samples, header, err := codec.ExtractFile("in.wav")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(header.SampleCount(), len(samples))
//
// Samples are returned as audio.Samples, widened to 32 bits. A file that
// holds fewer samples than its header declares fails with ErrTruncatedData
// unless Codec.AllowTruncated is set, in which case the samples present are
// returned.
//
// # Writing Samples
//
//	err := codec.ExportFile(samples, "in.wav", "out.wav")
//
// The source header is copied verbatim and the samples are narrowed back to
// 16 bits, wrapping on overflow. Set Codec.RewriteSizes to recompute the
// data size and total length fields from the buffer.
//
// # Error Handling
//
// Failures are reported with sentinel errors, test them with errors.Is:
//   - ErrIO: a file could not be opened, read or written
//   - ErrFormatMismatch: the chunk id does not match the codec byte order
//   - ErrNotWavFormat: the WAVEfmt or data markers are missing
//   - ErrUnsupportedFormat: the fmt chunk is not 16 bytes
//   - ErrUnsupportedBitDepth: samples are not 16-bit
//   - ErrTruncatedData: fewer samples than declared
//
// # Diagnostics
//
// A Codec reports the parsed header to its Logger. NopLogger discards
// everything, NewStdLogger forwards to a *log.Logger.
package wav
