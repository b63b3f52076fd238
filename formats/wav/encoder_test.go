// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/beatmix/audio"
)

// testTrack holds exactly representable 16-bit values.
func testTrack(t *testing.T, n int) *audio.Track {
	t.Helper()

	frames := make([]audio.Frame, n)
	for i := range frames {
		v := int16((i*37)%65536 - 32768)
		frames[i] = audio.Frame{L: float32(v) / 32768, R: float32(-v/2) / 32768}
	}

	track, err := audio.NewTrack(44100, frames)
	if err != nil {
		t.Fatalf("NewTrack() error = %v", err)
	}
	return track
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	track := testTrack(t, 20000)
	path := filepath.Join(t.TempDir(), "out.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Encode(f, track); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := 44 + 4*track.Len(); len(data) != want {
		t.Errorf("file size = %d, want %d", len(data), want)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.ReadTrack(src)
	if err != nil {
		t.Fatalf("ReadTrack() error = %v", err)
	}

	if !got.Equal(track) {
		t.Error("decoded track differs from the encoded one")
	}
}

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	track := testTrack(t, 5)
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, track); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+5*4 {
		t.Fatalf("size = %d, want %d", len(data), 44+5*4)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"RIFF", string(data[0:4]), "RIFF"},
		{"RIFF size", binary.LittleEndian.Uint32(data[4:8]), uint32(36 + 20)},
		{"WAVE", string(data[8:12]), "WAVE"},
		{"format", binary.LittleEndian.Uint16(data[20:22]), uint16(1)},
		{"channels", binary.LittleEndian.Uint16(data[22:24]), uint16(2)},
		{"rate", binary.LittleEndian.Uint32(data[24:28]), uint32(44100)},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), uint32(44100 * 4)},
		{"block align", binary.LittleEndian.Uint16(data[32:34]), uint16(4)},
		{"bits", binary.LittleEndian.Uint16(data[34:36]), uint16(16)},
		{"data", string(data[36:40]), "data"},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), uint32(20)},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	// both channels of every frame are written
	first := track.At(0)
	if l := int16(binary.LittleEndian.Uint16(data[44:46])); l != int16(first.L*32768) {
		t.Errorf("frame 0 left = %d", l)
	}
	if r := int16(binary.LittleEndian.Uint16(data[46:48])); r != int16(first.R*32768) {
		t.Errorf("frame 0 right = %d", r)
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	track := testTrack(t, 10000)
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, track); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	src, err := Decoder{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.ReadTrack(src)
	if err != nil {
		t.Fatalf("ReadTrack() error = %v", err)
	}
	if !got.Equal(track) {
		t.Error("decoded track differs from the written one")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWriteWAV16_WriteError(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(failingWriter{}, testTrack(t, 3))
	if !errors.Is(err, audio.ErrEncodeFailure) || !errors.Is(err, os.ErrClosed) {
		t.Errorf("WriteWAV16() error = %v, want ErrEncodeFailure wrapping ErrClosed", err)
	}
}
