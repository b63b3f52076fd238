// SPDX-License-Identifier: EPL-2.0

// Package beatmix builds a beatmatched transition between two tracks.
//
// The pipeline for each pair is:
//
//  1. normalize both inputs to stereo float frames (audio)
//  2. conform them to 44.1 kHz with the band-limited resampler (resample)
//  3. estimate each track's tempo (tempo)
//  4. crossfade the tail of A into the head of B while B's playback rate
//     ramps from A's tempo back to its own (transition)
//
// Steps 1 to 3 run for A and B concurrently. The result is deterministic:
// the same inputs and Config always give the same frames.
//
// # Quick Start
//
//	reg := beatmix.DefaultRegistry()
//	a, err := beatmix.LoadTrack("a.flac", reg)
//	...
//	b, err := beatmix.LoadTrack("b.mp3", reg)
//	...
//	res, err := beatmix.MixTracks(ctx, a, b, beatmix.DefaultConfig())
//	...
//	err = wav.Encode(out, res.Track)
//
// MixPCM takes raw interleaved integer samples instead, and Mix takes any
// pair of audio.Source values.
//
// # Errors
//
// Errors wrap the sentinel of their kind (audio.ErrDecodeFailure,
// transition.ErrFadeWindowExceedsTrack, resample.ErrRatioOutOfRange and so
// on) and, where one track is at fault, an *audio.TrackError naming it.
// An undetected tempo is not an error; it is reported in Result.Plan.Fallback
// and the fade runs at unity ratio.
package beatmix
