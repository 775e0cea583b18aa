// Package keywords derives an ordered list of furniture search tokens from a room analysis.
package keywords

import (
	"context"
	"strings"

	"github.com/vibear-app/vibear/internal/models"
)

// Interpreter turns a free-text request into extra tokens. Implementations return nil on failure.
type Interpreter interface {
	Keywords(ctx context.Context, a models.RoomAnalysis, query string) []string
}

type spatialCue struct {
	substrings []string
	tokens     []string
}

// spatialCues is evaluated in order; a cue fires at most once per derivation
var spatialCues = []spatialCue{
	{substrings: []string{"corner"}, tokens: []string{"corner", "chair"}},
	{substrings: []string{"center", "middle"}, tokens: []string{"coffee table", "rug"}},
	{substrings: []string{"wall"}, tokens: []string{"shelf", "cabinet"}},
	{substrings: []string{"window"}, tokens: []string{"armchair", "plant"}},
	{substrings: []string{"seating", "living"}, tokens: []string{"sofa", "armchair"}},
}

// Deriver builds search keywords from an analysis and, optionally, a natural-language query
type Deriver struct {
	interpreter Interpreter
}

// NewDeriver creates a deriver. interpreter may be nil, in which case queries are ignored.
func NewDeriver(interpreter Interpreter) *Deriver {
	return &Deriver{interpreter: interpreter}
}

// Derive returns base keywords, then spatial-cue tokens, then theme and style words, then any
// tokens interpreted from query. Empty tokens are dropped; duplicates are kept.
func (d *Deriver) Derive(ctx context.Context, a models.RoomAnalysis, query string) []string {
	tokens := FromAnalysis(a)

	if d.interpreter != nil && strings.TrimSpace(query) != "" {
		tokens = appendNonEmpty(tokens, d.interpreter.Keywords(ctx, a, query)...)
	}

	return tokens
}

// FromAnalysis is the deterministic part of Derive
func FromAnalysis(a models.RoomAnalysis) []string {
	var tokens []string
	tokens = appendNonEmpty(tokens, a.FurnitureKeywords...)

	space := strings.ToLower(strings.Join(a.Dimensions.AvailableSpace, " "))
	for _, cue := range spatialCues {
		if containsAny(space, cue.substrings) {
			tokens = append(tokens, cue.tokens...)
		}
	}

	tokens = appendNonEmpty(tokens, strings.Split(strings.ToLower(a.Theme), " ")...)
	tokens = appendNonEmpty(tokens, strings.Split(strings.ToLower(a.Style), " ")...)

	return tokens
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func appendNonEmpty(dst []string, tokens ...string) []string {
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			dst = append(dst, t)
		}
	}
	return dst
}
