// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/formats/wav"
)

// describe collects log fields for an input file. Tags are optional; files
// without them, or unreadable ones, still get their path.
func describe(path string) logrus.Fields {
	fields := logrus.Fields{"path": path}

	f, err := os.Open(path)
	if err != nil {
		return fields
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil {
		fields["size"] = humanize.Bytes(uint64(st.Size()))
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		return fields
	}
	if s := m.Title(); s != "" {
		fields["title"] = s
	}
	if s := m.Artist(); s != "" {
		fields["artist"] = s
	}

	return fields
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeOutput encodes t to path, or streams it to stdout for "-". It returns
// the number of bytes written.
func writeOutput(path string, t *audio.Track, stdout io.Writer) (int64, error) {
	if path == "-" {
		cw := &countingWriter{w: stdout}
		err := wav.WriteWAV16(cw, t)
		return cw.n, err
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", audio.ErrEncodeFailure, err)
	}

	err = wav.Encode(f, t)
	var size int64
	if err == nil {
		size, err = f.Seek(0, io.SeekEnd)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("%w: %w", audio.ErrEncodeFailure, err)
	}

	return size, nil
}
