// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/utils"
)

// Kernel selects the interpolation used between input frames.
type Kernel int

const (
	// Sinc is a Blackman-windowed sinc, low-passed at min(1, ratio) of the
	// input Nyquist frequency so decimation does not alias.
	Sinc Kernel = iota
	// Cubic is a 4-point Catmull-Rom spline. Cheap, no anti-aliasing.
	Cubic
)

func (k Kernel) String() string {
	switch k {
	case Sinc:
		return "sinc"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// ParseKernel accepts "sinc" or "cubic".
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sinc", "":
		return Sinc, nil
	case "cubic":
		return Cubic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
	}
}

// tableDensity is the number of tabulated kernel points per input frame.
const tableDensity = 512

// cutoffSteps quantizes cutoffs so schedule blocks share tables.
const cutoffSteps = 4096

// sincKernel is a tabulated windowed sinc, symmetric around zero.
type sincKernel struct {
	width float64 // half-width in input frames
	table []float64
}

func newSincKernel(cutoff float64, zeroCrossings int) *sincKernel {
	width := float64(zeroCrossings) / cutoff
	table := make([]float64, int(math.Ceil(width*tableDensity))+2)

	for i := range table {
		x := float64(i) / tableDensity
		if x >= width {
			break
		}
		table[i] = cutoff * sinc(cutoff*x) * blackman(x/width)
	}

	return &sincKernel{width: width, table: table}
}

func sinc(y float64) float64 {
	if y == 0 {
		return 1
	}
	if y == math.Trunc(y) {
		return 0
	}
	return math.Sin(math.Pi*y) / (math.Pi * y)
}

// blackman is the Blackman window centered on u=0, falling to 0 at |u|=1.
func blackman(u float64) float64 {
	return 0.42 + 0.5*math.Cos(math.Pi*u) + 0.08*math.Cos(2*math.Pi*u)
}

func (k *sincKernel) weight(x float64) float64 {
	x = math.Abs(x)
	if x >= k.width {
		return 0
	}

	p := x * tableDensity
	i := int(p)
	f := p - float64(i)

	return k.table[i] + f*(k.table[i+1]-k.table[i])
}

// at interpolates in at fractional position t. Indices past either end hold
// the edge frame.
func (k *sincKernel) at(in []audio.Frame, t float64) audio.Frame {
	last := len(in) - 1
	lo := int(math.Floor(t-k.width)) + 1
	hi := int(math.Floor(t + k.width))

	var l, r, wsum float64
	for i := lo; i <= hi; i++ {
		w := k.weight(t - float64(i))
		if w == 0 {
			continue
		}
		f := in[min(max(i, 0), last)]
		l += w * float64(f.L)
		r += w * float64(f.R)
		wsum += w
	}

	if wsum == 0 {
		return in[min(max(int(math.Round(t)), 0), last)]
	}

	return audio.Frame{L: float32(l / wsum), R: float32(r / wsum)}
}

func cubicAt(in []audio.Frame, t float64) audio.Frame {
	last := len(in) - 1
	i := int(math.Floor(t))
	x := float32(t - float64(i))

	at := func(j int) audio.Frame { return in[min(max(j, 0), last)] }
	f0, f1, f2, f3 := at(i-1), at(i), at(i+1), at(i+2)

	return audio.Frame{
		L: utils.CubicInterpolate(f0.L, f1.L, f2.L, f3.L, x),
		R: utils.CubicInterpolate(f0.R, f1.R, f2.R, f3.R, x),
	}
}
