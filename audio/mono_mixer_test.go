// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 1, 100, 0.5))

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(sample int, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 || mixer.SampleRate() != 8000 {
		t.Fatalf("MonoMixer = %d ch @ %d Hz", mixer.Channels(), mixer.SampleRate())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := range n {
		if math.Abs(float64(buf[i]-0.5)) > 0.001 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_MatchesTrackMid(t *testing.T) {
	t.Parallel()

	track, err := ReadTrack(newSineSource(44100, 2, 3000, 220))
	if err != nil {
		t.Fatalf("ReadTrack() error = %v", err)
	}

	mixer := NewMonoMixer(track.Source())
	buf := make([]float32, 1000)
	var got []float32
	for {
		n, err := mixer.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := track.Mono()
	if len(got) != len(want) {
		t.Fatalf("mixed %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMonoMixer_MultipleChannels(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 50, func(sample, channel int) float32 {
		return float32(channel) * 0.1
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 50)
	n, _ := mixer.ReadSamples(buf)
	if n != 50 {
		t.Fatalf("ReadSamples() n = %d, want 50", n)
	}

	// (0 + 0.1 + 0.2 + 0.3) / 4
	if math.Abs(float64(buf[0]-0.15)) > 1e-6 {
		t.Errorf("buf[0] = %v, want 0.15", buf[0])
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(8000, 2, 10))
	n, err := mixer.ReadSamples(nil)

	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

// BenchmarkMonoMixer_StereoToMono benchmarks the stereo fast path
func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		mixer := NewMonoMixer(newSineSource(44100, 2, 44100, 440.0))
		for {
			_, err := mixer.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}
