// SPDX-License-Identifier: EPL-2.0

package transition

import "errors"

var (
	// ErrFadeWindowExceedsTrack is returned by New when a track is not
	// longer than the fade, or when B cannot feed the tempo ramp.
	ErrFadeWindowExceedsTrack = errors.New("fade window exceeds track length")
	ErrSampleRateMismatch     = errors.New("tracks have different sample rates")
	ErrInvalidFade            = errors.New("fade length must be positive")
	ErrUnknownEnvelope        = errors.New("unknown crossfade envelope")

	// ErrFinalized is returned by an Output that already produced its Track.
	ErrFinalized = errors.New("output already finalized")
	// ErrDone is returned by Step once the engine reached Done.
	ErrDone = errors.New("transition done")
)
