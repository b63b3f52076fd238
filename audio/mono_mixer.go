// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes a Source by averaging its channels.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples writes up to len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		// grow with headroom, never shrink
		m.tmp = make([]float32, max(needed, 8192))
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	if channels == 2 {
		for f := range frames {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}
		return frames, err
	}

	inv := float32(1) / float32(channels)
	for f := range frames {
		var sum float32
		for c := range channels {
			sum += m.tmp[f*channels+c]
		}
		dst[f] = sum * inv
	}

	return frames, err
}
