// SPDX-License-Identifier: EPL-2.0

// Package resample changes the playback rate of stereo frame sequences.
//
// A ratio is output frames per input frame. A ratio below 1 shortens the
// sequence and plays it faster; above 1 lengthens it and plays it slower.
// Every call checks the ratio against Options.MinRatio and
// Options.MaxRatio, which default to [0.5, 2].
//
// # One-shot
//
//	r := resample.New(resample.DefaultOptions())
//	out, err := r.Resample(frames, 0.96) // len(out) == round(len(frames)*0.96)
//
// Conform uses the same machinery to move a whole Track to another sample
// rate, so it needs bounds wide enough for the rate pair.
//
// # Streaming
//
// A Stream emits blocks from one input, each at its own ratio, and keeps
// the fractional read position between them:
//
//	s, err := r.NewStream(frames)
//	for _, ratio := range ramp {
//	    block, err := s.Next(1024, ratio)
//	    ...
//	}
//	rest := frames[s.Consumed():]
//
// # Kernels
//
// Sinc (the default) is a tabulated Blackman-windowed sinc whose cutoff
// follows the ratio, so speeding material up does not alias. Cubic is the
// 4-point Catmull-Rom spline from package utils. Both hold the edge frame
// past either end of the input and weight-normalize, so DC passes at unity
// gain.
package resample
