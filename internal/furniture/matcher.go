// Package furniture finds 3D furniture for a room: multi-strategy remote search with a bundled
// fallback catalog, per-category browsing and AR target resolution.
package furniture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/sketchfab"
)

const (
	// DefaultPageSize bounds each strategy's query
	DefaultPageSize = 8
	// CategoryPageSize is used when browsing a category
	CategoryPageSize = 12
)

// Source is the remote asset search the matcher queries
type Source interface {
	Search(ctx context.Context, q sketchfab.Query) (*sketchfab.SearchPage, error)
	Model(ctx context.Context, uid string) (models.FurnitureItem, error)
}

var categoryQueries = map[string]string{
	"chair":   "chair furniture seat",
	"table":   "table desk furniture",
	"sofa":    "sofa couch furniture",
	"bed":     "bed bedroom furniture",
	"lamp":    "lamp light lighting",
	"shelf":   "shelf bookshelf storage",
	"cabinet": "cabinet storage furniture",
	"plant":   "plant pot decoration",
}

// Matcher searches the remote catalog with progressively broader queries
type Matcher struct {
	source   Source
	pageSize int
}

// NewMatcher creates a matcher. A nil source always yields the fallback catalog.
func NewMatcher(source Source, pageSize int) *Matcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Matcher{
		source:   source,
		pageSize: pageSize,
	}
}

// Strategies returns the ordered queries Search tries for the given keywords
func Strategies(keywords []string) []string {
	head := keywords
	if len(head) > 3 {
		head = head[:3]
	}
	primary := "furniture"
	if len(keywords) > 0 {
		primary = keywords[0]
	}

	return []string{
		strings.Join(head, " "),
		primary,
		"chair",
		"table",
		"sofa",
		"furniture",
	}
}

// Search returns the first non-empty result set across Strategies, one request at a time.
// Failed strategies are logged and skipped. When nothing matches the fallback catalog is returned,
// so the result is never empty.
func (m *Matcher) Search(ctx context.Context, keywords []string) []models.FurnitureItem {
	if m.source == nil {
		return FallbackCatalog()
	}

	for i, term := range Strategies(keywords) {
		if ctx.Err() != nil {
			slog.Warn("Furniture search abandoned", "error", ctx.Err())
			break
		}

		page, err := m.source.Search(ctx, sketchfab.Query{
			Text:   term,
			Page:   1,
			Count:  m.pageSize,
			SortBy: sketchfab.SortByLikes,
		})
		if err != nil {
			slog.Warn("Search strategy failed", "strategy", i+1, "query", term, "error", err)
			continue
		}
		if len(page.Results) > 0 {
			slog.Info("Furniture found", "strategy", i+1, "query", term, "count", len(page.Results))
			return page.Results
		}
		slog.Debug("Search strategy returned nothing", "strategy", i+1, "query", term)
	}

	slog.Info("All search strategies exhausted, using fallback catalog")
	return FallbackCatalog()
}

// Model returns a single item. Local ids resolve from the fallback catalog; remote failures propagate.
func (m *Matcher) Model(ctx context.Context, id string) (models.FurnitureItem, error) {
	if strings.HasPrefix(id, models.LocalIDPrefix) {
		item, ok := localItem(id)
		if !ok {
			return models.FurnitureItem{}, fmt.Errorf("local model %s: %w", id, sketchfab.ErrNotFound)
		}
		return item, nil
	}

	if m.source == nil {
		return models.FurnitureItem{}, fmt.Errorf("no remote catalog configured for model %s", id)
	}

	item, err := m.source.Model(ctx, id)
	if err != nil {
		return models.FurnitureItem{}, fmt.Errorf("failed to fetch model details: %w", err)
	}
	return item, nil
}

// CategoryQuery maps a browse category to its search text
func CategoryQuery(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if q, ok := categoryQueries[category]; ok {
		return q
	}
	return category + " furniture"
}

// Category browses one page of a furniture category, falling back to the bundled catalog
func (m *Matcher) Category(ctx context.Context, category string) []models.FurnitureItem {
	if m.source == nil {
		return FallbackCatalog()
	}

	query := CategoryQuery(category)
	page, err := m.source.Search(ctx, sketchfab.Query{
		Text:   query,
		Page:   1,
		Count:  CategoryPageSize,
		SortBy: sketchfab.SortByLikes,
	})
	if err != nil {
		slog.Warn("Category search failed", "category", category, "query", query, "error", err)
		return FallbackCatalog()
	}
	if len(page.Results) == 0 {
		return FallbackCatalog()
	}
	return page.Results
}
