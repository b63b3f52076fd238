// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// frames calls fn with every Hann-windowed analysis frame of mono. The
// buffer handed to fn is reused between calls.
func frames(mono []float32, size, hop int, fn func(i int, frame []float64)) int {
	w := window.Hann(size)
	buf := make([]float64, size)

	n := 0
	for start := 0; start+size <= len(mono); start += hop {
		for j := range buf {
			buf[j] = float64(mono[start+j]) * w[j]
		}
		fn(n, buf)
		n++
	}

	return n
}

func frameCount(samples, size, hop int) int {
	if samples < size {
		return 0
	}
	return (samples-size)/hop + 1
}

// spectralFlux is the half-wave rectified magnitude increase per bin,
// summed. The frame before the first is taken as silence.
func spectralFlux(mono []float32, size, hop int) []float64 {
	flux := make([]float64, frameCount(len(mono), size, hop))
	prev := make([]float64, size/2+1)
	mag := make([]float64, size/2+1)

	frames(mono, size, hop, func(i int, frame []float64) {
		spectrum := fft.FFTReal(frame)

		var sum float64
		for k := range mag {
			mag[k] = cmplx.Abs(spectrum[k])
			if d := mag[k] - prev[k]; d > 0 {
				sum += d
			}
		}
		flux[i] = sum
		prev, mag = mag, prev
	})

	return flux
}

// energyFlux is the half-wave rectified increase of windowed frame energy.
func energyFlux(mono []float32, size, hop int) []float64 {
	flux := make([]float64, frameCount(len(mono), size, hop))

	var prev float64
	frames(mono, size, hop, func(i int, frame []float64) {
		var e float64
		for _, v := range frame {
			e += v * v
		}
		if d := e - prev; d > 0 {
			flux[i] = d
		}
		prev = e
	})

	return flux
}

// normalize scales s in place so its maximum is 1. It reports false when s
// holds no positive value.
func normalize(s []float64) bool {
	var peak float64
	for _, v := range s {
		peak = max(peak, v)
	}
	if peak <= 0 {
		return false
	}

	for i := range s {
		s[i] /= peak
	}
	return true
}
