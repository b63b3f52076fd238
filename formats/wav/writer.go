// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/utils"
)

const headerSize = 44

// WriteWAV16 streams t as a 16-bit stereo PCM WAV to a writer that cannot
// seek, such as a pipe. The sizes are known up front, so the header is
// written first.
func WriteWAV16(w io.Writer, t *audio.Track) error {
	const (
		channels      = 2
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)

	dataSize := uint64(t.Len()) * blockAlign
	if dataSize > 0xFFFFFFFF-(headerSize-8) {
		return fmt.Errorf("%w: %d frames do not fit a RIFF file", audio.ErrEncodeFailure, t.Len())
	}

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(dataSize)+headerSize-8)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(t.SampleRate()))
	binary.LittleEndian.PutUint32(header[28:32], uint32(t.SampleRate())*blockAlign)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrEncodeFailure, err)
	}

	// write in chunks of encodeChunk frames
	buf := make([]byte, 0, encodeChunk*blockAlign)
	for start := 0; start < t.Len(); start += encodeChunk {
		end := min(start+encodeChunk, t.Len())

		buf = buf[:0]
		for i := start; i < end; i++ {
			f := t.At(i)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(utils.Float32ToInt16(f.L)))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(utils.Float32ToInt16(f.R)))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrEncodeFailure, err)
		}
	}

	return nil
}
