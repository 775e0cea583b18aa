// Package imaging decodes captured room photos and bounds their size before they go to a vision model.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// JPEGQuality matches the 0.8 quality the capture view encodes frames with
const JPEGQuality = 80

// ErrEmptyImage is returned for blank input
var ErrEmptyImage = errors.New("empty image")

// DecodeBase64 accepts raw base64 or a data URL and returns the bytes and their MIME type
func DecodeBase64(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", ErrEmptyImage
	}

	mimeType := ""
	if strings.HasPrefix(s, "data:") {
		header, payload, ok := strings.Cut(s, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		s = payload
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// some clients strip padding
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode base64 image: %w", err)
		}
	}
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}

	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return data, mimeType, nil
}

// Normalize decodes the photo, scales its longest edge down to maxDim and re-encodes it as JPEG.
// maxDim <= 0 disables scaling.
func Normalize(data []byte, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = fit(img, maxDim)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Dimensions returns the pixel size without decoding the whole image
func Dimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

func fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}

	nw, nh := maxDim, h*maxDim/w
	if h > w {
		nw, nh = w*maxDim/h, maxDim
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
