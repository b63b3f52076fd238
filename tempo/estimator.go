// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"fmt"
	"strings"
	"time"

	"github.com/ik5/beatmix/audio"
)

// Detection selects the onset strength function.
type Detection int

const (
	// SpectralFlux sums the positive magnitude change of every FFT bin
	// between consecutive analysis frames.
	SpectralFlux Detection = iota
	// Energy is the positive change of windowed frame energy.
	Energy
)

func (d Detection) String() string {
	switch d {
	case SpectralFlux:
		return "spectral-flux"
	case Energy:
		return "energy"
	default:
		return fmt.Sprintf("Detection(%d)", int(d))
	}
}

// ParseDetection accepts "spectral-flux" (also "flux") or "energy".
func ParseDetection(s string) (Detection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spectral-flux", "flux", "":
		return SpectralFlux, nil
	case "energy":
		return Energy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDetection, s)
	}
}

// Options tune an Estimator. Zero fields take the DefaultOptions value,
// except Refine, which DefaultOptions turns on.
type Options struct {
	WindowSize int // analysis frame, in samples
	HopSize    int // samples between analysis frames
	Detection  Detection

	Refractory time.Duration // minimum gap between two onsets
	Threshold  float64       // over the local mean, on the max-normalized onset function
	MeanWindow int           // half-width of the local mean, in analysis frames
	PeakWindow int           // half-width of the local maximum test, in analysis frames

	MinBPM float64 // autocorrelation search range
	MaxBPM float64
	Refine bool

	// MinConfidence rejects estimates whose onsets mostly miss the beat
	// grid; they report BPM 0. A negative value keeps every estimate.
	MinConfidence float64
}

func DefaultOptions() Options {
	return Options{
		WindowSize: 1024,
		HopSize:    512,
		Detection:  SpectralFlux,
		Refractory: 300 * time.Millisecond,
		Threshold:  0.1,
		MeanWindow: 8,
		PeakWindow: 3,
		MinBPM:     60,
		MaxBPM:     200,
		Refine:     true,

		MinConfidence: 0.25,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.WindowSize <= 0 {
		o.WindowSize = d.WindowSize
	}
	if o.HopSize <= 0 {
		o.HopSize = d.HopSize
	}
	if o.Refractory <= 0 {
		o.Refractory = d.Refractory
	}
	if o.Threshold <= 0 {
		o.Threshold = d.Threshold
	}
	if o.MeanWindow <= 0 {
		o.MeanWindow = d.MeanWindow
	}
	if o.PeakWindow <= 0 {
		o.PeakWindow = d.PeakWindow
	}
	if o.MinBPM <= 0 {
		o.MinBPM = d.MinBPM
	}
	if o.MaxBPM <= o.MinBPM {
		o.MaxBPM = max(d.MaxBPM, 2*o.MinBPM)
	}
	if o.MinConfidence == 0 {
		o.MinConfidence = d.MinConfidence
	}
	return o
}

// Estimate is the tempo of one track.
type Estimate struct {
	// BPM is the final tempo, 0 when no beat was found.
	BPM float64
	// Onsets is the number of picked onsets.
	Onsets int
	// Confidence is the share of inter-onset intervals within 10% of a
	// whole number of beats.
	Confidence float64
	// Periodic is the autocorrelation tempo before octave folding, 0 when
	// refinement is off or found nothing.
	Periodic float64
	Duration time.Duration
}

func (e Estimate) Detected() bool { return e.BPM > 0 }

func (e Estimate) String() string {
	if !e.Detected() {
		return "undetected"
	}
	return fmt.Sprintf("%.2f BPM (%d onsets, confidence %.2f)", e.BPM, e.Onsets, e.Confidence)
}

// Estimator derives a tempo from onset density, optionally refined by the
// periodicity of the onset function. It holds no per-track state and is
// safe for concurrent use.
type Estimator struct {
	opts Options
}

func NewEstimator(opts Options) *Estimator {
	return &Estimator{opts: opts.withDefaults()}
}

func (e *Estimator) Options() Options { return e.opts }

// Estimate analyses t. Tracks shorter than one analysis window, silent
// tracks, tracks with fewer than two onsets and tracks whose onsets fall
// below MinConfidence yield BPM 0.
func (e *Estimator) Estimate(t *audio.Track) Estimate {
	est := Estimate{Duration: t.Duration()}

	mono := downmix(t)
	if len(mono) < e.opts.WindowSize {
		return est
	}

	var strength []float64
	switch e.opts.Detection {
	case Energy:
		strength = energyFlux(mono, e.opts.WindowSize, e.opts.HopSize)
	default:
		strength = spectralFlux(mono, e.opts.WindowSize, e.opts.HopSize)
	}
	if !normalize(strength) {
		return est
	}

	fps := float64(t.SampleRate()) / float64(e.opts.HopSize)
	refractory := int(e.opts.Refractory.Seconds()*fps + 0.5)

	peaks := pickPeaks(strength, e.opts.PeakWindow, e.opts.MeanWindow, e.opts.Threshold, refractory)
	est.Onsets = len(peaks)
	if len(peaks) < 2 {
		return est
	}

	seconds := float64(t.Len()) / float64(t.SampleRate())
	bpm := 60 * float64(len(peaks)) / seconds

	if e.opts.Refine {
		if periodic := periodicity(strength, fps, e.opts.MinBPM, e.opts.MaxBPM); periodic > 0 {
			est.Periodic = periodic
			// silent intros and outros do not count toward the octave
			bpm = foldOctave(periodic, activeRate(peaks, fps))
		}
	}

	est.Confidence = confidence(peaks, fps, bpm)
	if e.opts.MinConfidence > 0 && est.Confidence < e.opts.MinConfidence {
		return est
	}
	est.BPM = bpm

	return est
}

func downmix(t *audio.Track) []float32 {
	mixer := audio.NewMonoMixer(t.Source())
	defer mixer.Close()

	mono := make([]float32, 0, t.Len())
	buf := make([]float32, 4096)

	for {
		n, err := mixer.ReadSamples(buf)
		mono = append(mono, buf[:n]...)
		// a TrackSource only ever fails with io.EOF
		if err != nil || n == 0 {
			return mono
		}
	}
}
