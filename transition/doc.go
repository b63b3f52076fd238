// SPDX-License-Identifier: EPL-2.0

// Package transition builds a tempo-matched crossfade from an anchor track
// A into a continuation track B.
//
// An Engine runs four states in order:
//
//	PreFade   A[0 : len(A)-F] verbatim
//	Fading    A's last F frames blended with B, resampled block by block
//	PostFade  the rest of B verbatim
//	Done      the output Track is finalized
//
// During the fade B starts at A's tempo, resampled by bpm(B)/bpm(A), and
// the ratio ramps linearly to 1 by the last fade frame, so PostFade can
// continue B at its own speed. The ramp is applied in blocks of
// Config.BlockSize frames through one resample.Stream, which carries the
// read position across blocks. When either tempo is undetected the ratio
// stays 1 and Plan.Fallback says which track was at fault.
//
// New checks everything that can be checked without touching samples:
// matching sample rates, a fade longer than the resampler's MinChunk and
// shorter than both tracks, and a tempo ramp B is long enough to feed.
//
//	eng, err := transition.New(a, b, estA, estB, cfg)
//	if err != nil {
//	    return err
//	}
//	log.Printf("ratio %.3f", eng.Plan().InitialRatio)
//	mix, err := eng.Run()
package transition
