package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibear-app/vibear/internal/imaging"
	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/providers"
)

type fakeProvider struct {
	reply    string
	err      error
	requests []providers.Request
}

func (f *fakeProvider) Generate(_ context.Context, req providers.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func roomPhoto(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for x := 0; x < 64; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 180, B: uint8(x * 3), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

const wellFormedReply = `COLOR_PALETTE: Warm Beige, Soft Gray, Walnut Brown, Cream, Sage Green, Black
THEME: Modern Scandinavian
STYLE: Minimalist with natural wood accents
ESTIMATED_SIZE: Medium, about 12 x 14 ft
AVAILABLE_SPACE:
- Corner near window
- Along the left wall
LIGHTING: Bright natural light from a large window
IMPROVEMENT_SUGGESTIONS:
1. Add a floor lamp for evening light
2. Place a rug under the coffee table
FURNITURE_KEYWORDS: Armchair, floor lamp, rug`

func TestAnalyzeWellFormedReply(t *testing.T) {
	provider := &fakeProvider{reply: wellFormedReply}
	analyzer := NewAnalyzer(provider, Config{Model: "gemini-2.0-flash", Temperature: 0.4, MaxImageDimension: 32})

	got := analyzer.Analyze(context.Background(), roomPhoto(t), "I want a reading nook")

	expected := models.RoomAnalysis{
		ColorPalette: []string{"Warm Beige", "Soft Gray", "Walnut Brown", "Cream", "Sage Green"},
		Theme:        "Modern Scandinavian",
		Style:        "Minimalist with natural wood accents",
		Dimensions: models.Dimensions{
			EstimatedSize:  "Medium, about 12 x 14 ft",
			AvailableSpace: []string{"Corner near window", "Along the left wall"},
		},
		Lighting: "Bright natural light from a large window",
		Suggestions: []string{
			"Add a floor lamp for evening light",
			"Place a rug under the coffee table",
		},
		FurnitureKeywords: []string{"armchair", "floor lamp", "rug"},
	}
	assert.Equal(t, expected, got)

	require.Len(t, provider.requests, 1)
	req := provider.requests[0]
	assert.Equal(t, "gemini-2.0-flash", req.Model)
	assert.Contains(t, req.Prompt, "COLOR_PALETTE")
	assert.Contains(t, req.Prompt, "FURNITURE_KEYWORDS")
	assert.Contains(t, req.Prompt, "I want a reading nook")
	require.Len(t, req.Images, 1)
	assert.Equal(t, "image/jpeg", req.Images[0].MIMEType)
	assert.NotEmpty(t, req.Images[0].Data)

	w, h, err := imaging.Dimensions(req.Images[0].Data)
	require.NoError(t, err)
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
}

func TestAnalyzeFailuresReturnFailureRecord(t *testing.T) {
	tests := []struct {
		name     string
		provider providers.Provider
		image    string
	}{
		{name: "transport error", provider: &fakeProvider{err: errors.New("connection refused")}},
		{name: "missing credential", provider: &fakeProvider{err: providers.ErrMissingCredential}},
		{name: "empty reply", provider: &fakeProvider{reply: ""}},
		{name: "whitespace reply", provider: &fakeProvider{reply: "  \n\t "}},
		{name: "no provider", provider: nil},
		{name: "undecodable image", provider: &fakeProvider{reply: wellFormedReply}, image: "%%%"},
		{name: "missing image", provider: &fakeProvider{reply: wellFormedReply}, image: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photo := tt.image
			if photo == "" {
				photo = roomPhoto(t)
			}
			got := NewAnalyzer(tt.provider, Config{}).Analyze(context.Background(), photo, "")
			assert.Equal(t, FailureAnalysis(), got)
			assertFullyPopulated(t, got)
		})
	}
}

func TestAnalyzeSendsUndecodableImageBytesAsIs(t *testing.T) {
	provider := &fakeProvider{reply: "THEME: Loft"}
	raw := base64.StdEncoding.EncodeToString([]byte("not really a jpeg"))

	got := NewAnalyzer(provider, Config{}).Analyze(context.Background(), "data:image/heic;base64,"+raw, "")

	assert.Equal(t, "Loft", got.Theme)
	require.Len(t, provider.requests, 1)
	assert.Equal(t, "image/heic", provider.requests[0].Images[0].MIMEType)
	assert.Equal(t, []byte("not really a jpeg"), provider.requests[0].Images[0].Data)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	analyzer := NewAnalyzer(&fakeProvider{reply: wellFormedReply}, Config{})
	photo := roomPhoto(t)

	first := analyzer.Analyze(context.Background(), photo, "cozy")
	second := analyzer.Analyze(context.Background(), photo, "cozy")

	assert.Equal(t, first, second)
}

func assertFullyPopulated(t *testing.T, a models.RoomAnalysis) {
	t.Helper()
	assert.NotEmpty(t, a.ColorPalette)
	assert.NotEmpty(t, a.Theme)
	assert.NotEmpty(t, a.Style)
	assert.NotEmpty(t, a.Dimensions.EstimatedSize)
	assert.NotEmpty(t, a.Dimensions.AvailableSpace)
	assert.NotEmpty(t, a.Lighting)
	assert.NotEmpty(t, a.Suggestions)
	assert.NotEmpty(t, a.FurnitureKeywords)
}
