// SPDX-License-Identifier: EPL-2.0

package tempo

import "errors"

// ErrTempoUndetected reports a track with no usable beat. It is never
// returned by Estimate, which reports BPM 0 instead; callers that fall back
// to a neutral tempo use it to say why.
var ErrTempoUndetected = errors.New("tempo undetected")

var ErrUnknownDetection = errors.New("unknown onset detection")
