package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vibear-app/vibear/internal/providers"
)

const defaultBaseURL = "https://api.openai.com/v1"

// OpenAI is a provider for OpenAI chat completions
type OpenAI struct {
	apiKey string
	http   *resty.Client
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// New returns a new OpenAI provider; an empty baseURL targets api.openai.com
func New(apiKey, baseURL string) *OpenAI {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAI{
		apiKey: apiKey,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(120*time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

// Generate sends the prompt and images as a single user message
func (o *OpenAI) Generate(ctx context.Context, req providers.Request) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("openai: %w", providers.ErrMissingCredential)
	}

	content := []map[string]any{
		{
			"type": "text",
			"text": req.Prompt,
		},
	}
	for _, img := range req.Images {
		mimeType := img.MIMEType
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		content = append(content, map[string]any{
			"type": "image_url",
			"image_url": map[string]string{
				"url": "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}

	requestBody := map[string]any{
		"model": req.Model,
		"messages": []map[string]any{
			{
				"role":    "user",
				"content": content,
			},
		},
		"max_tokens":  2000,
		"temperature": req.Temperature,
	}

	var response chatResponse
	resp, err := o.http.R().
		SetContext(ctx).
		SetAuthToken(o.apiKey).
		SetBody(requestBody).
		SetResult(&response).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("openAI API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	return response.Choices[0].Message.Content, nil
}
