// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrInvalidDstSize,
		ErrEmptyTrack,
		ErrUnsupportedChannelLayout,
		ErrInvalidSampleRate,
		ErrUnsupportedBitDepth,
		ErrUnsupportedFormat,
		ErrDecodeFailure,
		ErrEncodeFailure,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want distinct sentinels", a, b)
			}
		}
	}
}

func TestTrackError(t *testing.T) {
	t.Parallel()

	err := WithTrack("B", fmt.Errorf("%w: 12 frames", ErrEmptyTrack))

	if !errors.Is(err, ErrEmptyTrack) {
		t.Errorf("errors.Is(%v, ErrEmptyTrack) = false", err)
	}

	var te *TrackError
	if !errors.As(err, &te) {
		t.Fatalf("errors.As(%v, *TrackError) = false", err)
	}
	if te.Track != "B" {
		t.Errorf("TrackError.Track = %q, want \"B\"", te.Track)
	}

	want := "track B: empty track: 12 frames"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWithTrack_Nil(t *testing.T) {
	t.Parallel()

	if err := WithTrack("A", nil); err != nil {
		t.Errorf("WithTrack(\"A\", nil) = %v, want nil", err)
	}
}
