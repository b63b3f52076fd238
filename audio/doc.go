// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks of the mixer.
//
// # Sources and Decoders
//
// Format decoders produce a Source, a pull-based stream of interleaved
// float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// A Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("a.wav")
//
// # Frames and Tracks
//
// Everything downstream of decoding works on a Track: an immutable,
// non-empty sequence of stereo Frames at a fixed sample rate. Two
// constructors make up the frame normalizer:
//
//	track, err := audio.ReadTrack(source)                  // float Source
//	track, err := audio.FromPCM(44100, 1, 16, samples)    // integer PCM
//
// Both duplicate mono into the two channels and reject any layout other than
// mono or stereo with ErrUnsupportedChannelLayout. A stream with no complete
// frames is ErrEmptyTrack.
//
// A Track can be streamed back out through Track.Source, and downmixed with
// a MonoMixer:
//
//	mono := audio.NewMonoMixer(track.Source())
//
// # Errors
//
// The error kinds shared by the whole module live here: ErrEmptyTrack,
// ErrUnsupportedChannelLayout, ErrDecodeFailure and ErrEncodeFailure.
// TrackError names the track an error belongs to and unwraps to the kind:
//
//	var te *audio.TrackError
//	if errors.As(err, &te) {
//	    fmt.Println("bad track:", te.Track)
//	}
package audio
