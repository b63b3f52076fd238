// SPDX-License-Identifier: EPL-2.0

package resample

import "errors"

var (
	// ErrRatioOutOfRange is returned for a ratio outside the resampler's bounds.
	ErrRatioOutOfRange = errors.New("resample ratio out of range")
	// ErrChunkTooShort is returned when fewer frames than Options.MinChunk
	// are handed in (or requested) in one call.
	ErrChunkTooShort = errors.New("chunk shorter than minimum processing unit")
	ErrUnknownKernel = errors.New("unknown interpolation kernel")
)
