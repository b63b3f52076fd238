// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"max negative", -1.0, math.MinInt16},
		{"half positive", 0.5, 16384},
		{"half negative", -0.5, -16384},
		{"rounds up", 0.001, 33}, // 32.768
		{"rounds down", -0.0001, -3}, // -3.2768
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -1.5, math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16_InvertsPCMScale checks every int16 survives v/32768 and back.
func TestFloat32ToInt16_InvertsPCMScale(t *testing.T) {
	t.Parallel()

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		x := float32(v) / 32768.0
		if got := Float32ToInt16(x); int(got) != v {
			t.Fatalf("Float32ToInt16(%d/32768) = %d", v, got)
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct{ in, want float32 }{
		{0.3, 0.3}, {1.2, 1}, {-7, -1}, {-1, -1},
	} {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// BenchmarkFloat32ToInt16 benchmarks single sample conversion
func BenchmarkFloat32ToInt16(b *testing.B) {
	b.ReportAllocs()

	var x float32 = 0.123
	for b.Loop() {
		_ = Float32ToInt16(x)
	}
}
