// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// Decoder handles integer PCM at 8, 16, 24 and 32 bits through
// github.com/go-audio/wav, with any sample rate and one or two channels
// (more channels decode, but audio.ReadTrack rejects them).
//
// Two writers produce 16-bit stereo PCM from an audio.Track:
//
//   - Encode uses the go-audio encoder and patches the header sizes at the
//     end, so it needs an io.WriteSeeker such as an *os.File.
//   - WriteWAV16 computes the sizes first and streams header and data in
//     order, for pipes and other writers that cannot seek.
//
// Both write every frame as a left and a right sample. Samples are rounded
// to the nearest 16-bit value; full scale saturates.
package wav
