// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// reads signed integer PCM at 8, 16, 24 or 32 bits, any sample rate:
//
//	f, _ := os.Open("a.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, aiff.ErrNotAiffFile), errors.Is(err, audio.ErrDecodeFailure)
//	}
//	track, err := audio.ReadTrack(src)
//
// Samples come out as float32 in [-1.0, 1.0].
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores the sample rate as an 80-bit float
//   - Stores 8-bit samples signed (WAV stores them unsigned)
package aiff
