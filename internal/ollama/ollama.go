package ollama

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vibear-app/vibear/internal/providers"
)

const defaultURL = "http://localhost:11434"

// Ollama is a provider for a local Ollama server
type Ollama struct {
	http *resty.Client
}

// New returns a new Ollama provider
func New(ollamaURL string) *Ollama {
	if ollamaURL == "" {
		ollamaURL = defaultURL
	}

	return &Ollama{
		http: resty.New().
			SetBaseURL(ollamaURL).
			SetTimeout(5*time.Minute).
			SetHeader("Content-Type", "application/json"),
	}
}

// Generate runs a non-streaming /api/generate call with base64 images attached
func (o *Ollama) Generate(ctx context.Context, req providers.Request) (string, error) {
	images := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, base64.StdEncoding.EncodeToString(img.Data))
	}

	requestBody := map[string]any{
		"model":  req.Model,
		"prompt": req.Prompt,
		"stream": false,
		"options": map[string]any{
			"temperature": req.Temperature,
		},
	}
	if len(images) > 0 {
		requestBody["images"] = images
	}

	var response struct {
		Response string `json:"response"`
	}
	resp, err := o.http.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&response).
		Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("failed to call Ollama API: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("ollama API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return response.Response, nil
}
