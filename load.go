// SPDX-License-Identifier: EPL-2.0

package beatmix

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/formats/aiff"
	"github.com/ik5/beatmix/formats/flac"
	"github.com/ik5/beatmix/formats/mp3"
	"github.com/ik5/beatmix/formats/vorbis"
	"github.com/ik5/beatmix/formats/wav"
)

// DefaultRegistry knows every container this module decodes.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// LoadTrack decodes the file at path with the decoder registered for its
// extension. A nil reg means DefaultRegistry.
func LoadTrack(path string, reg *audio.Registry) (_ *audio.Track, err error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = errors.Join(audio.ErrDecodeFailure, cerr)
		}
	}()

	t, err := audio.ReadTrack(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
