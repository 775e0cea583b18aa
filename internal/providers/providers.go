package providers

import (
	"context"
	"errors"
)

// ErrMissingCredential is returned when a provider has no API key configured
var ErrMissingCredential = errors.New("provider credential not configured")

// Image is an inline photo sent alongside the prompt
type Image struct {
	MIMEType string
	Data     []byte
}

// Request represents a single generation request to an LLM provider
type Request struct {
	Model       string
	Temperature float64
	Prompt      string
	Images      []Image
}

// Provider defines the interface for an LLM provider
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}
