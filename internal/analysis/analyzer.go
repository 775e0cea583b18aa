// Package analysis turns a room photo into a RoomAnalysis via a vision-capable LLM.
package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vibear-app/vibear/internal/imaging"
	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/providers"
)

// Failure categories, logged only. Callers always get the same FailureAnalysis.
const (
	failureInput     = "input"
	failureTransport = "transport"
	failureParse     = "parse"
)

// Config holds model settings for the analyzer
type Config struct {
	Model             string
	Temperature       float64
	MaxImageDimension int
}

// Analyzer requests a labeled-section analysis of a room photo and parses the reply
type Analyzer struct {
	provider providers.Provider
	config   Config
}

// NewAnalyzer creates an analyzer backed by the given provider
func NewAnalyzer(provider providers.Provider, config Config) *Analyzer {
	return &Analyzer{
		provider: provider,
		config:   config,
	}
}

// Analyze never fails: transport errors, missing credentials and unusable replies all yield
// FailureAnalysis, while a usable reply with missing sections is filled from DefaultAnalysis.
// image is raw base64 or a data URL.
func (a *Analyzer) Analyze(ctx context.Context, image, userContext string) models.RoomAnalysis {
	if a.provider == nil {
		slog.Warn("Room analysis skipped, no provider configured", "category", failureInput)
		return FailureAnalysis()
	}

	photo, err := a.preparePhoto(image)
	if err != nil {
		slog.Warn("Room analysis failed", "category", failureInput, "error", err)
		return FailureAnalysis()
	}

	text, err := a.provider.Generate(ctx, providers.Request{
		Model:       a.config.Model,
		Temperature: a.config.Temperature,
		Prompt:      buildAnalysisPrompt(userContext),
		Images:      []providers.Image{photo},
	})
	if err != nil {
		slog.Error("Room analysis failed", "category", failureTransport, "model", a.config.Model, "error", err)
		return FailureAnalysis()
	}

	if strings.TrimSpace(text) == "" {
		slog.Error("Room analysis failed", "category", failureParse, "model", a.config.Model, "error", "empty reply")
		return FailureAnalysis()
	}

	analysis := Parse(text)
	slog.Info("Room analyzed", "theme", analysis.Theme, "style", analysis.Style, "keywords", len(analysis.FurnitureKeywords))
	return analysis
}

func (a *Analyzer) preparePhoto(image string) (providers.Image, error) {
	data, mimeType, err := imaging.DecodeBase64(image)
	if err != nil {
		return providers.Image{}, err
	}

	if w, h, err := imaging.Dimensions(data); err == nil {
		slog.Debug("Photo received", "mime", mimeType, "width", w, "height", h, "bytes", len(data))
	}

	normalized, err := imaging.Normalize(data, a.config.MaxImageDimension)
	if err != nil {
		// send what we were given and let the model decide
		slog.Debug("Photo not normalized, sending original bytes", "mime", mimeType, "error", err)
		return providers.Image{MIMEType: mimeType, Data: data}, nil
	}

	return providers.Image{MIMEType: "image/jpeg", Data: normalized}, nil
}
