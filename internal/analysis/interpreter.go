package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/providers"
)

// MaxQueryKeywords bounds the tokens a free-text request may contribute
const MaxQueryKeywords = 6

// Interpreter turns a natural-language request into search keywords for an analyzed room
type Interpreter struct {
	provider providers.Provider
	config   Config
}

// NewInterpreter creates an interpreter backed by the given provider
func NewInterpreter(provider providers.Provider, config Config) *Interpreter {
	return &Interpreter{
		provider: provider,
		config:   config,
	}
}

// Keywords returns nil on any failure; it never blocks the pipeline
func (i *Interpreter) Keywords(ctx context.Context, a models.RoomAnalysis, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" || i.provider == nil {
		return nil
	}

	text, err := i.provider.Generate(ctx, providers.Request{
		Model:       i.config.Model,
		Temperature: i.config.Temperature,
		Prompt:      buildKeywordPrompt(a, query),
	})
	if err != nil {
		slog.Warn("Keyword interpretation failed", "query", query, "error", err)
		return nil
	}

	return parseKeywordList(text)
}

func parseKeywordList(text string) []string {
	var keywords []string
	for _, item := range splitItems(text, true) {
		kw := strings.ToLower(item)
		// a sentence slipped through
		if len(strings.Fields(kw)) > 3 {
			continue
		}
		keywords = append(keywords, kw)
		if len(keywords) == MaxQueryKeywords {
			break
		}
	}
	return keywords
}
