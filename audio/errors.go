// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrEmptyTrack is returned for a sample stream with no complete frames,
	// or one whose sample count does not divide into its channel count.
	ErrEmptyTrack = errors.New("empty track")
	// ErrUnsupportedChannelLayout is returned for anything but mono or stereo.
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
	ErrInvalidSampleRate        = errors.New("sample rate must be positive")
	ErrUnsupportedBitDepth      = errors.New("unsupported PCM bit depth")
	ErrUnsupportedFormat        = errors.New("unsupported audio format")

	ErrDecodeFailure = errors.New("decode failure")
	ErrEncodeFailure = errors.New("encode failure")
)

// TrackError attaches the name of the offending track to an error.
type TrackError struct {
	Track string
	Err   error
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("track %s: %v", e.Track, e.Err)
}

func (e *TrackError) Unwrap() error { return e.Err }

// WithTrack wraps err in a TrackError, or returns nil for a nil err.
func WithTrack(track string, err error) error {
	if err == nil {
		return nil
	}

	return &TrackError{Track: track, Err: err}
}
