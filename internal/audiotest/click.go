// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

const (
	clickFreq  = 1000.0 // Hz
	clickDecay = 5.0    // e-folds over one click
)

// ClickAt returns a waveform with a short decaying tone burst every
// interval seconds, starting at frame 0. Bursts last 10 ms.
func ClickAt(sampleRate int, interval float64, amplitude float32) func(sample int, channel int) float32 {
	period := interval * float64(sampleRate)
	length := sampleRate / 100

	return func(sample int, _ int) float32 {
		k := math.Floor(float64(sample) / period)
		start := int(math.Round(k * period))
		if sample < start {
			start = int(math.Round((k - 1) * period))
		}

		tau := sample - start
		if tau < 0 || tau >= length {
			return 0
		}

		env := math.Exp(-clickDecay * float64(tau) / float64(length))
		return amplitude * float32(env*math.Sin(2*math.Pi*clickFreq*float64(tau)/float64(sampleRate)))
	}
}

// NewClickSource generates a click track at bpm beats per minute.
func NewClickSource(sampleRate, channels, totalSamples int, bpm float64, amplitude float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, ClickAt(sampleRate, 60/bpm, amplitude))
}
