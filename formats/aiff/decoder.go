// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/formats/internal/pcm"
)

type Decoder struct{}

// Decode reads AIFF integer PCM at 8, 16, 24 or 32 bits. go-audio needs an
// io.ReadSeeker; other readers are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	if !aiff.NewDecoder(rs).IsValidFile() {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, ErrNotAiffFile)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	dec := aiff.NewDecoder(rs)
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, ErrUnsupportedAiffLayout)
	}

	return pcm.NewSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth), false)
}
