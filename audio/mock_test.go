// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// mockSource is a test helper that generates audio data for testing.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newConstantSource(sampleRate, channels, totalSamples, 0)
}

func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// rawSource replays fixed reads, for malformed and failing streams.
type rawSource struct {
	channels int
	reads    [][]float32
	err      error // returned once reads run out; io.EOF when nil
}

func (r *rawSource) SampleRate() int { return 44100 }
func (r *rawSource) Channels() int   { return r.channels }
func (r *rawSource) BufSize() int    { return 64 }
func (r *rawSource) Close() error    { return nil }

func (r *rawSource) ReadSamples(dst []float32) (int, error) {
	if len(r.reads) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}

	n := copy(dst, r.reads[0])
	r.reads = r.reads[1:]
	return n, nil
}
