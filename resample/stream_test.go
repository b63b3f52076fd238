// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"errors"
	"math"
	"testing"
)

func TestStream_MatchesOneShot(t *testing.T) {
	t.Parallel()

	r := New(DefaultOptions())
	in := sineFrames(20000, 330, 44100)
	const ratio = 0.8

	whole, err := r.Resample(in, ratio)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	s, err := r.NewStream(in)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	var got int
	for _, n := range []int{64, 100, 64, 1000, 77, 5000} {
		block, err := s.Next(n, ratio)
		if err != nil {
			t.Fatalf("Next(%d) error = %v", n, err)
		}
		for j, f := range block {
			w := whole[got+j]
			if math.Abs(float64(f.L-w.L)) > 1e-5 || math.Abs(float64(f.R-w.R)) > 1e-5 {
				t.Fatalf("frame %d = %+v, one-shot %+v", got+j, f, w)
			}
		}
		got += n
	}

	wantPos := float64(got) / ratio
	if math.Abs(s.Position()-wantPos) > 1e-6 {
		t.Errorf("Position() = %v, want %v", s.Position(), wantPos)
	}
	if s.Consumed() != int(math.Ceil(wantPos)) {
		t.Errorf("Consumed() = %d, want %d", s.Consumed(), int(math.Ceil(wantPos)))
	}
}

func TestStream_UnityCopies(t *testing.T) {
	t.Parallel()

	in := sineFrames(1000, 440, 44100)
	s, err := New(DefaultOptions()).NewStream(in)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	for range 3 {
		if _, err := s.Next(100, 1); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}
	block, err := s.Next(100, 1)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	for j, f := range block {
		if f != in[300+j] {
			t.Fatalf("frame %d = %+v, want %+v", j, f, in[300+j])
		}
	}
	if s.Consumed() != 400 {
		t.Errorf("Consumed() = %d, want 400", s.Consumed())
	}
}

func TestStream_VaryingRatioIsContinuous(t *testing.T) {
	t.Parallel()

	in := sineFrames(30000, 200, 44100)
	s, err := New(DefaultOptions()).NewStream(in)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	var out []float32
	for k := range 100 {
		ratio := 0.8 + 0.2*float64(k)/99
		block, err := s.Next(64, ratio)
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		for _, f := range block {
			out = append(out, f.L)
		}
	}

	// A 200 Hz tone played at most 1.25x fast moves at most
	// 2*pi*250/44100*0.8 per frame; a phase jump at a block edge would not.
	limit := 2 * math.Pi * 250 / 44100 * 0.8 * 1.05
	// The first frames sit next to the held edge and are skipped.
	for i := 64; i < len(out); i++ {
		if d := math.Abs(float64(out[i] - out[i-1])); d > limit {
			t.Fatalf("step %d jumps by %v, limit %v", i, d, limit)
		}
	}
}

func TestStream_Errors(t *testing.T) {
	t.Parallel()

	r := New(DefaultOptions())

	if _, err := r.NewStream(sineFrames(10, 440, 44100)); !errors.Is(err, ErrChunkTooShort) {
		t.Errorf("NewStream(10 frames) error = %v, want ErrChunkTooShort", err)
	}

	s, err := r.NewStream(sineFrames(1000, 440, 44100))
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}
	if _, err := s.Next(1, 1.1); !errors.Is(err, ErrChunkTooShort) {
		t.Errorf("Next(1) error = %v, want ErrChunkTooShort", err)
	}
	if _, err := s.Next(64, 3); !errors.Is(err, ErrRatioOutOfRange) {
		t.Errorf("Next(64, 3) error = %v, want ErrRatioOutOfRange", err)
	}
	if s.Position() != 0 {
		t.Errorf("failed calls moved Position() to %v", s.Position())
	}
}
