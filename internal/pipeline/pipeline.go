// Package pipeline runs one capture through Analyze, Derive and Match.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/vibear-app/vibear/internal/advice"
	"github.com/vibear-app/vibear/internal/models"
)

// Analyzer describes a room photo
type Analyzer interface {
	Analyze(ctx context.Context, image, userContext string) models.RoomAnalysis
}

// Deriver turns an analysis into search keywords
type Deriver interface {
	Derive(ctx context.Context, a models.RoomAnalysis, query string) []string
}

// Matcher finds furniture for a keyword list
type Matcher interface {
	Search(ctx context.Context, keywords []string) []models.FurnitureItem
}

// Input is one captured photo plus what the user said about it
type Input struct {
	Image   string `json:"image"`
	Context string `json:"context,omitempty"`
	Query   string `json:"query,omitempty"`
}

// Result carries every stage's output
type Result struct {
	Analysis  models.RoomAnalysis    `json:"analysis"`
	Keywords  []string               `json:"keywords"`
	Furniture []models.FurnitureItem `json:"furniture"`
	Reply     string                 `json:"reply,omitempty"`
}

// Service wires the three stages together. It holds no per-run state.
type Service struct {
	analyzer Analyzer
	deriver  Deriver
	matcher  Matcher
}

// NewService creates a pipeline service
func NewService(analyzer Analyzer, deriver Deriver, matcher Matcher) *Service {
	return &Service{
		analyzer: analyzer,
		deriver:  deriver,
		matcher:  matcher,
	}
}

// Run never fails; every stage degrades to its documented fallback
func (s *Service) Run(ctx context.Context, in Input) Result {
	start := time.Now()

	userContext := in.Context
	if userContext == "" {
		userContext = in.Query
	}

	analysis := s.analyzer.Analyze(ctx, in.Image, userContext)
	keywords := s.deriver.Derive(ctx, analysis, in.Query)
	items := s.matcher.Search(ctx, keywords)

	result := Result{
		Analysis:  analysis,
		Keywords:  keywords,
		Furniture: items,
	}
	if in.Query != "" {
		result.Reply = advice.Reply(analysis, in.Query)
	}

	slog.Info("Pipeline completed",
		"keywords", len(keywords),
		"furniture", len(items),
		"duration", time.Since(start))

	return result
}
