// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrNotPCM, "WAV data is not integer PCM"},
		{ErrNoDataChunk, "WAV file has no data chunk"},
		{ErrInvalidLayout, "WAV header declares no channels or no sample rate"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotWavFile, ErrNotPCM, ErrNoDataChunk, ErrInvalidLayout}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}
