// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrNotPCM is returned for compressed or floating point WAV data.
	ErrNotPCM        = errors.New("WAV data is not integer PCM")
	ErrNoDataChunk   = errors.New("WAV file has no data chunk")
	ErrInvalidLayout = errors.New("WAV header declares no channels or no sample rate")
)
