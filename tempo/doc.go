// SPDX-License-Identifier: EPL-2.0

// Package tempo estimates the tempo of a Track in beats per minute.
//
// The track is downmixed with audio.MonoMixer and cut into Hann-windowed
// analysis frames. Each frame gets an onset strength, either spectral flux
// (go-dsp FFT magnitudes) or energy increase. The strength function is
// normalized by its maximum, so the result does not depend on the track's
// level, and onsets are picked from it with a local-maximum test, an
// adaptive threshold and a refractory gap.
//
// The first estimate is onset density: 60 × onsets / duration. With
// Options.Refine (the default) the autocorrelation of the strength function
// gives a periodic tempo between Options.MinBPM and Options.MaxBPM, which
// is folded by octaves toward the density estimate and used instead.
//
//	est := tempo.NewEstimator(tempo.DefaultOptions()).Estimate(track)
//	if !est.Detected() {
//	    // BPM is 0: silence, no onsets, or shorter than one window
//	}
package tempo
