// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/utils"
)

// encodeChunk is the number of frames handed to the encoder per write.
const encodeChunk = 8192

// Encode writes t as a 16-bit stereo PCM WAV. The header sizes are patched
// on completion, so w must be able to seek back.
func Encode(w io.WriteSeeker, t *audio.Track) error {
	enc := gowav.NewEncoder(w, t.SampleRate(), 16, 2, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: t.SampleRate()},
		Data:           make([]int, 0, 2*encodeChunk),
		SourceBitDepth: 16,
	}

	for start := 0; start < t.Len(); start += encodeChunk {
		end := min(start+encodeChunk, t.Len())

		buf.Data = buf.Data[:0]
		for i := start; i < end; i++ {
			f := t.At(i)
			buf.Data = append(buf.Data, int(utils.Float32ToInt16(f.L)), int(utils.Float32ToInt16(f.R)))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrEncodeFailure, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrEncodeFailure, err)
	}

	return nil
}
