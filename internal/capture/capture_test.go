package capture

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	tracks []*track
	frame  []byte
	err    error
}

func (s *fakeStream) Tracks() []Track {
	out := make([]Track, 0, len(s.tracks))
	for _, t := range s.tracks {
		out = append(out, t)
	}
	return out
}

func (s *fakeStream) Frame() ([]byte, error) { return s.frame, s.err }

func (s *fakeStream) allStopped() bool {
	for _, t := range s.tracks {
		if !t.Stopped() {
			return false
		}
	}
	return true
}

type fakeDevice struct {
	stream *fakeStream
	err    error
	got    Constraints
}

func (d *fakeDevice) Open(_ context.Context, c Constraints) (Stream, error) {
	d.got = c
	if d.err != nil {
		return nil, d.err
	}
	return d.stream, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestWithViewReleasesTracksOnEveryExit(t *testing.T) {
	tests := []struct {
		name string
		fn   func(v *View) error
	}{
		{name: "success", fn: func(v *View) error { _, err := v.Capture(); return err }},
		{name: "error", fn: func(*View) error { return errors.New("analysis failed") }},
		{name: "explicit close", fn: func(v *View) error { v.Close(); return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &fakeStream{tracks: []*track{{}, {}}, frame: pngBytes(t)}
			dev := &fakeDevice{stream: stream}

			_ = WithView(context.Background(), dev, DefaultConstraints(), tt.fn)

			assert.True(t, stream.allStopped())
			assert.Equal(t, DefaultConstraints(), dev.got)
		})
	}
}

func TestWithViewReleasesTracksOnPanic(t *testing.T) {
	stream := &fakeStream{tracks: []*track{{}}}
	dev := &fakeDevice{stream: stream}

	assert.Panics(t, func() {
		_ = WithView(context.Background(), dev, DefaultConstraints(), func(*View) error { panic("boom") })
	})
	assert.True(t, stream.allStopped())
}

func TestCaptureProducesJPEGDataURL(t *testing.T) {
	stream := &fakeStream{tracks: []*track{{}}, frame: pngBytes(t)}
	v, err := OpenView(context.Background(), &fakeDevice{stream: stream}, DefaultConstraints())
	require.NoError(t, err)
	defer v.Close()

	url, err := v.Capture()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))
}

func TestCapturePassesThroughUndecodableFrame(t *testing.T) {
	frame := []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00")
	stream := &fakeStream{tracks: []*track{{}}, frame: frame}
	v, err := OpenView(context.Background(), &fakeDevice{stream: stream}, DefaultConstraints())
	require.NoError(t, err)
	defer v.Close()

	url, err := v.Capture()
	require.NoError(t, err)

	header, payload, ok := strings.Cut(url, ",")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(header, "data:"))
	assert.True(t, strings.HasSuffix(header, ";base64"))
	assert.NotEqual(t, "data:image/jpeg;base64", header)
	assert.Equal(t, base64.StdEncoding.EncodeToString(frame), payload)
}

func TestOpenErrorsAreRetryable(t *testing.T) {
	for _, cause := range []error{ErrPermissionDenied, ErrNoCamera} {
		_, err := OpenView(context.Background(), &fakeDevice{err: cause}, DefaultConstraints())
		require.Error(t, err)
		assert.True(t, IsRetryable(err))
	}
	assert.False(t, IsRetryable(errors.New("decoder crashed")))
}

func TestFileDevice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0o644))

	var captured string
	err := WithView(context.Background(), FileDevice{Path: path}, DefaultConstraints(), func(v *View) error {
		var err error
		captured, err = v.Capture()
		return err
	})
	require.NoError(t, err)
	assert.NotEmpty(t, captured)

	_, err = FileDevice{Path: filepath.Join(dir, "missing.png")}.Open(context.Background(), DefaultConstraints())
	assert.ErrorIs(t, err, ErrNoCamera)
}

func TestFileStreamStopsServingFrames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0o644))

	v, err := OpenView(context.Background(), FileDevice{Path: path}, DefaultConstraints())
	require.NoError(t, err)
	v.Close()
	v.Close()

	_, err = v.Capture()
	assert.Error(t, err)
}
