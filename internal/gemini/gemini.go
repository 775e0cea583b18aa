package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/vibear-app/vibear/internal/providers"
	"google.golang.org/api/option"
)

// Gemini is a provider for Google Gemini
type Gemini struct {
	apiKey string
	opts   []option.ClientOption
}

// New returns a new Gemini provider. Extra client options are appended after the API key.
func New(apiKey string, opts ...option.ClientOption) *Gemini {
	return &Gemini{
		apiKey: apiKey,
		opts:   opts,
	}
}

// Generate sends the prompt and any images to Gemini and returns the first text part
func (g *Gemini) Generate(ctx context.Context, req providers.Request) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini: %w", providers.ErrMissingCredential)
	}

	opts := append([]option.ClientOption{option.WithAPIKey(g.apiKey)}, g.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(req.Model)
	model.SetTemperature(float32(req.Temperature))

	resp, err := model.GenerateContent(ctx, buildParts(req)...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return firstText(resp)
}

func buildParts(req providers.Request) []genai.Part {
	parts := []genai.Part{genai.Text(req.Prompt)}
	for _, img := range req.Images {
		parts = append(parts, genai.ImageData(imageFormat(img.MIMEType), img.Data))
	}
	return parts
}

// imageFormat turns "image/png" into "png"; genai.ImageData prefixes "image/" itself
func imageFormat(mimeType string) string {
	format := strings.TrimPrefix(strings.ToLower(mimeType), "image/")
	if format == "" || format == "jpg" {
		return "jpeg"
	}
	return format
}

// firstText walks candidates[0].content.parts[0]; anything else counts as a failed reply
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return string(txt), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
