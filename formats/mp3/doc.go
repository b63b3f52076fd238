// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit little-endian stereo, so every decoded
// Source reports two channels, mono files included. Samples are scaled by
// 1/32768 into [-1, 1).
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, audio.ErrDecodeFailure)
//	}
//	track, err := audio.ReadTrack(src)
//
// ReadSamples returns whole stereo frames only. A truncated final frame is
// dropped and reported as io.EOF.
package mp3
