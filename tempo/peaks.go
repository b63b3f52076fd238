// SPDX-License-Identifier: EPL-2.0

package tempo

import "math"

// pickPeaks returns the indices of onsets in s: local maxima within
// ±peakWin that clear the mean over ±meanWin by threshold, at least
// refractory frames after the previous onset. On a plateau the last frame
// wins.
func pickPeaks(s []float64, peakWin, meanWin int, threshold float64, refractory int) []int {
	var peaks []int

	for i, v := range s {
		if v <= 0 || !isLocalMax(s, i, peakWin) {
			continue
		}
		if v <= localMean(s, i, meanWin)+threshold {
			continue
		}
		if len(peaks) > 0 && i-peaks[len(peaks)-1] < refractory {
			continue
		}
		peaks = append(peaks, i)
	}

	return peaks
}

func isLocalMax(s []float64, i, win int) bool {
	for j := max(0, i-win); j < i; j++ {
		if s[j] > s[i] {
			return false
		}
	}
	for j := i + 1; j <= min(len(s)-1, i+win); j++ {
		if s[j] >= s[i] {
			return false
		}
	}
	return true
}

func localMean(s []float64, i, win int) float64 {
	lo, hi := max(0, i-win), min(len(s)-1, i+win)

	var sum float64
	for _, v := range s[lo : hi+1] {
		sum += v
	}
	return sum / float64(hi-lo+1)
}

// periodicity finds the strongest beat period of s between minBPM and
// maxBPM by autocorrelation, with parabolic interpolation around the best
// lag. It returns 0 when s is too short or has no positive correlation in
// range.
func periodicity(s []float64, fps, minBPM, maxBPM float64) float64 {
	minLag := max(1, int(math.Floor(60*fps/maxBPM)))
	maxLag := min(len(s)-2, int(math.Ceil(60*fps/minBPM)))
	if maxLag <= minLag {
		return 0
	}

	var mean float64
	for _, v := range s {
		mean += v
	}
	mean /= float64(len(s))

	d := make([]float64, len(s))
	for i, v := range s {
		d[i] = v - mean
	}

	// biased: longer lags sum fewer terms, which favours the faster of two
	// octave-related periods
	acf := func(lag int) float64 {
		var sum float64
		for i := 0; i+lag < len(d); i++ {
			sum += d[i] * d[i+lag]
		}
		return sum / float64(len(d))
	}

	best, bestVal := 0, 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		if v := acf(lag); v > bestVal {
			best, bestVal = lag, v
		}
	}
	if best == 0 {
		return 0
	}

	lag := float64(best)
	y0, y1, y2 := acf(best-1), bestVal, acf(best+1)
	if den := y0 - 2*y1 + y2; den < 0 {
		lag += min(0.5, max(-0.5, 0.5*(y0-y2)/den))
	}

	return 60 * fps / lag
}

// foldOctave moves bpm by factors of two into the octave around ref.
func foldOctave(bpm, ref float64) float64 {
	if bpm <= 0 || ref <= 0 {
		return bpm
	}
	for bpm < ref/math.Sqrt2 {
		bpm *= 2
	}
	for bpm > ref*math.Sqrt2 {
		bpm /= 2
	}
	return bpm
}

// activeRate is the onset rate in BPM between the first and the last onset.
func activeRate(peaks []int, fps float64) float64 {
	if len(peaks) < 2 {
		return 0
	}
	span := float64(peaks[len(peaks)-1]-peaks[0]) / fps
	return 60 * float64(len(peaks)-1) / span
}

// confidence is the share of inter-onset intervals within 10% of a whole
// number of beats at bpm.
func confidence(peaks []int, fps, bpm float64) float64 {
	if len(peaks) < 2 || bpm <= 0 {
		return 0
	}

	period := 60 * fps / bpm

	var hits int
	for i := 1; i < len(peaks); i++ {
		d := float64(peaks[i] - peaks[i-1])
		m := math.Round(d / period)
		if m >= 1 && math.Abs(d-m*period) <= 0.1*period {
			hits++
		}
	}

	return float64(hits) / float64(len(peaks)-1)
}
