// Package capture acquires a camera stream, grabs still frames and guarantees the stream is released.
package capture

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"github.com/vibear-app/vibear/internal/imaging"
)

var (
	// ErrPermissionDenied means the user or platform refused camera access
	ErrPermissionDenied = errors.New("camera permission denied")
	// ErrNoCamera means no matching video device exists
	ErrNoCamera = errors.New("no camera available")
)

// UnavailableMessage is shown next to the retry action
const UnavailableMessage = "Camera access denied or not available"

// IsRetryable reports whether err should be shown to the user with a retry action
func IsRetryable(err error) bool {
	return errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrNoCamera)
}

// Constraints describe the requested video stream
type Constraints struct {
	FacingMode  string
	IdealWidth  int
	IdealHeight int
}

// DefaultConstraints asks for the rear camera at 1080p
func DefaultConstraints() Constraints {
	return Constraints{
		FacingMode:  "environment",
		IdealWidth:  1920,
		IdealHeight: 1080,
	}
}

// Track is one media track of a stream
type Track interface {
	Stop()
	Stopped() bool
}

// Stream is an acquired camera stream
type Stream interface {
	Tracks() []Track
	// Frame returns the current still image in any decodable format
	Frame() ([]byte, error)
}

// Device opens camera streams
type Device interface {
	Open(ctx context.Context, c Constraints) (Stream, error)
}

// View owns a stream for as long as a capture screen is shown
type View struct {
	stream Stream
	once   sync.Once
}

// OpenView acquires a stream from dev
func OpenView(ctx context.Context, dev Device, c Constraints) (*View, error) {
	stream, err := dev.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to open camera: %w", err)
	}
	return &View{stream: stream}, nil
}

// Capture grabs a frame and returns it as a JPEG data URL. Frames the decoders cannot read
// (HEIC for instance) are passed through with their sniffed content type.
func (v *View) Capture() (string, error) {
	frame, err := v.stream.Frame()
	if err != nil {
		return "", fmt.Errorf("failed to capture frame: %w", err)
	}

	jpeg, err := imaging.Normalize(frame, 0)
	if err != nil {
		mimeType := http.DetectContentType(frame)
		slog.Debug("Frame not re-encoded, passing original bytes", "mime", mimeType, "error", err)
		return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(frame), nil
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg), nil
}

// Close stops every track. Safe to call more than once.
func (v *View) Close() {
	v.once.Do(func() {
		tracks := v.stream.Tracks()
		for _, t := range tracks {
			t.Stop()
		}
		slog.Debug("Camera released", "tracks", len(tracks))
	})
}

// WithView opens a view, runs fn and releases the stream on every exit path, panics included
func WithView(ctx context.Context, dev Device, c Constraints, fn func(v *View) error) error {
	v, err := OpenView(ctx, dev, c)
	if err != nil {
		return err
	}
	defer v.Close()
	return fn(v)
}

type track struct {
	stopped atomic.Bool
}

func (t *track) Stop()         { t.stopped.Store(true) }
func (t *track) Stopped() bool { return t.stopped.Load() }

// FileDevice serves a photo on disk as a single-track stream
type FileDevice struct {
	Path string
}

type fileStream struct {
	data  []byte
	track *track
}

func (s *fileStream) Tracks() []Track { return []Track{s.track} }

func (s *fileStream) Frame() ([]byte, error) {
	if s.track.Stopped() {
		return nil, errors.New("stream stopped")
	}
	return s.data, nil
}

func (d FileDevice) Open(ctx context.Context, _ Constraints) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(d.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%s: %w", d.Path, ErrNoCamera)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%s: %w", d.Path, ErrPermissionDenied)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", d.Path, err)
	}

	return &fileStream{data: data, track: &track{}}, nil
}
