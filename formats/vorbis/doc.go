// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples pass through unscaled.
// ReadSamples only returns whole interleaved frames; a buffer shorter than
// one frame reads nothing.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, audio.ErrDecodeFailure)
//	}
//	track, err := audio.ReadTrack(src)
//
// A stream that ends inside a packet is treated as a normal end of stream.
package vorbis
