// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{"start returns y1", 0, 1, 2, 3, 0, 1, 0},
		{"end returns y2", 0, 1, 2, 3, 1, 2, 0},
		{"linear data stays linear", 1, 2, 3, 4, 0.25, 2.25, 1e-6},
		{"negative values", -1, -0.5, 0.5, 1, 0.5, 0, 0.1},
		{"peak overshoot is bounded", 0.5, 0.9, 0.7, 0.3, 0.3, 0.85, 0.1},
		{"silence", 0, 0, 0, 0, 0.5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if diff := float32(math.Abs(float64(got - tt.want))); diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (tolerance %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

// TestCubicInterpolateBounds verifies the spline passes through its knots.
func TestCubicInterpolateBounds(t *testing.T) {
	t.Parallel()

	for i := range 100 {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)

		if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Errorf("x=0 should return y1=%v, got %v", y1, got)
		}
		if got := CubicInterpolate(y0, y1, y2, y3, 1); got != y2 {
			t.Errorf("x=1 should return y2=%v, got %v", y2, got)
		}
	}
}

// TestCubicInterpolate_ZeroAllocs verifies no heap allocations
func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	})

	if allocs > 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

// BenchmarkCubicInterpolate tests performance and allocations
func BenchmarkCubicInterpolate(b *testing.B) {
	b.ReportAllocs()

	var result float32
	for b.Loop() {
		result = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	}
	_ = result
}
