// SPDX-License-Identifier: EPL-2.0

package transition

import (
	"errors"
	"math"
	"testing"
)

var envelopes = []Envelope{EqualPower, Linear, RaisedCosine}

func TestEnvelope_Endpoints(t *testing.T) {
	t.Parallel()

	for _, env := range envelopes {
		for _, f := range []int{2, 32, 1000} {
			if fo, fi := env.Gains(0, f); fo != 1 || fi != 0 {
				t.Errorf("%v.Gains(0, %d) = %v, %v; want 1, 0", env, f, fo, fi)
			}
			if fo, fi := env.Gains(f-1, f); fo != 0 || fi != 1 {
				t.Errorf("%v.Gains(%d, %d) = %v, %v; want 0, 1", env, f-1, f, fo, fi)
			}
		}
	}
}

func TestEnvelope_EqualPower(t *testing.T) {
	t.Parallel()

	const f = 4410
	for i := range f {
		fo, fi := EqualPower.Gains(i, f)
		if sum := float64(fo*fo + fi*fi); math.Abs(sum-1) > 1e-6 {
			t.Fatalf("Gains(%d): fo²+fi² = %v, want 1", i, sum)
		}
	}
}

func TestEnvelope_AmplitudePreserving(t *testing.T) {
	t.Parallel()

	const f = 4410
	for _, env := range []Envelope{Linear, RaisedCosine} {
		for i := range f {
			fo, fi := env.Gains(i, f)
			if sum := fo + fi; math.Abs(float64(sum-1)) > 1e-7 {
				t.Fatalf("%v.Gains(%d): fo+fi = %v, want 1", env, i, sum)
			}
		}
	}
}

func TestEnvelope_Monotonic(t *testing.T) {
	t.Parallel()

	const f = 1000
	for _, env := range envelopes {
		prevOut, prevIn := env.Gains(0, f)
		for i := 1; i < f; i++ {
			fo, fi := env.Gains(i, f)
			if fo > prevOut || fi < prevIn {
				t.Fatalf("%v not monotonic at %d", env, i)
			}
			prevOut, prevIn = fo, fi
		}
	}
}

func TestParseEnvelope(t *testing.T) {
	t.Parallel()

	for _, env := range envelopes {
		got, err := ParseEnvelope(env.String())
		if err != nil || got != env {
			t.Errorf("ParseEnvelope(%q) = %v, %v", env.String(), got, err)
		}
	}

	if got, err := ParseEnvelope(""); err != nil || got != EqualPower {
		t.Errorf("ParseEnvelope(\"\") = %v, %v; want EqualPower", got, err)
	}
	if _, err := ParseEnvelope("s-curve"); !errors.Is(err, ErrUnknownEnvelope) {
		t.Errorf("ParseEnvelope(\"s-curve\") error = %v, want ErrUnknownEnvelope", err)
	}
}
