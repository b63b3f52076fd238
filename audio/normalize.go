// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxIdleReads bounds how many (0, nil) reads ReadTrack tolerates in a row
// before it declares the source stalled.
const maxIdleReads = 16

// PCMScale returns the divisor mapping signed integer PCM of the given bit
// depth onto [-1, 1].
func PCMScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 128.0, nil
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

func checkLayout(channels int) error {
	if channels != 1 && channels != 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedChannelLayout, channels)
	}
	return nil
}

// FromPCM builds a Track from interleaved signed integer PCM.
// Mono input is duplicated into both channels.
func FromPCM(sampleRate, channels, bitDepth int, samples []int) (*Track, error) {
	if err := checkLayout(channels); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	scale, err := PCMScale(bitDepth)
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, ErrEmptyTrack
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not fill %d-channel frames",
			ErrEmptyTrack, len(samples), channels)
	}

	frames := make([]Frame, len(samples)/channels)
	if channels == 1 {
		for i, v := range samples {
			frames[i] = MonoFrame(clip(float32(v) / scale))
		}
	} else {
		for i := range frames {
			frames[i] = Frame{
				L: clip(float32(samples[2*i]) / scale),
				R: clip(float32(samples[2*i+1]) / scale),
			}
		}
	}

	return &Track{frames: frames, sampleRate: sampleRate}, nil
}

// ReadTrack drains src into a Track. It does not close src.
func ReadTrack(src Source) (*Track, error) {
	channels := src.Channels()
	if err := checkLayout(channels); err != nil {
		return nil, err
	}

	sampleRate := src.SampleRate()
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels
	buf := make([]float32, size)

	var (
		samples []float32
		idle    int
	)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
			idle = 0
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
		}

		if n == 0 {
			idle++
			if idle >= maxIdleReads {
				return nil, fmt.Errorf("%w: source returned no data", ErrDecodeFailure)
			}
		}
	}

	if len(samples) == 0 {
		return nil, ErrEmptyTrack
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not fill %d-channel frames",
			ErrEmptyTrack, len(samples), channels)
	}

	frames := make([]Frame, len(samples)/channels)
	if channels == 1 {
		for i, v := range samples {
			frames[i] = MonoFrame(clip(v))
		}
	} else {
		for i := range frames {
			frames[i] = Frame{L: clip(samples[2*i]), R: clip(samples[2*i+1])}
		}
	}

	return &Track{frames: frames, sampleRate: sampleRate}, nil
}
