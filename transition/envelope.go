// SPDX-License-Identifier: EPL-2.0

package transition

import (
	"fmt"
	"math"
	"strings"
)

// Envelope is a crossfade gain policy. Every policy starts fully on the
// outgoing track at i=0 and ends fully on the incoming one at i=F-1.
type Envelope int

const (
	// EqualPower keeps fadeOut² + fadeIn² = 1, so uncorrelated material
	// holds its loudness. Identical material peaks 3 dB high mid-fade.
	EqualPower Envelope = iota
	// Linear keeps fadeOut + fadeIn = 1.
	Linear
	// RaisedCosine keeps fadeOut + fadeIn = 1 with zero slope at both ends.
	RaisedCosine
)

func (e Envelope) String() string {
	switch e {
	case EqualPower:
		return "equal-power"
	case Linear:
		return "linear"
	case RaisedCosine:
		return "raised-cosine"
	default:
		return fmt.Sprintf("Envelope(%d)", int(e))
	}
}

// ParseEnvelope accepts the String form of every policy. The empty string
// is EqualPower.
func ParseEnvelope(s string) (Envelope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equal-power", "":
		return EqualPower, nil
	case "linear":
		return Linear, nil
	case "raised-cosine":
		return RaisedCosine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEnvelope, s)
	}
}

// Gains returns the fade-out and fade-in gains for frame i of an F frame
// fade.
func (e Envelope) Gains(i, f int) (fadeOut, fadeIn float32) {
	if i <= 0 && f > 1 {
		return 1, 0
	}
	if i >= f-1 {
		return 0, 1
	}

	x := float64(i) / float64(f-1)

	switch e {
	case Linear:
		fadeIn = float32(x)
		return 1 - fadeIn, fadeIn
	case RaisedCosine:
		fadeOut = float32(0.5 + 0.5*math.Cos(math.Pi*x))
		return fadeOut, 1 - fadeOut
	default:
		return float32(math.Cos(math.Pi / 2 * x)), float32(math.Sin(math.Pi / 2 * x))
	}
}
