// Package app builds the analyzer, matcher, pipeline and session store from Settings.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vibear-app/vibear/internal/analysis"
	"github.com/vibear-app/vibear/internal/config"
	"github.com/vibear-app/vibear/internal/furniture"
	"github.com/vibear-app/vibear/internal/gemini"
	"github.com/vibear-app/vibear/internal/keywords"
	"github.com/vibear-app/vibear/internal/ollama"
	"github.com/vibear-app/vibear/internal/openai"
	"github.com/vibear-app/vibear/internal/pipeline"
	"github.com/vibear-app/vibear/internal/providers"
	"github.com/vibear-app/vibear/internal/sketchfab"
	"github.com/vibear-app/vibear/internal/storage"
)

// App holds the wired services
type App struct {
	Settings    config.Settings
	Model       analysis.Config
	Analyzer    *analysis.Analyzer
	Interpreter *analysis.Interpreter
	Deriver     *keywords.Deriver
	Matcher     *furniture.Matcher
	Resolver    *furniture.ARResolver
	Pipeline    *pipeline.Service
	Store       storage.Store

	closers []func() error
}

// NewProvider returns the configured vision provider and the analysis config to use with it
func NewProvider(s config.Settings) (providers.Provider, analysis.Config, error) {
	cfg := analysis.Config{MaxImageDimension: s.Imaging.MaxDimension}

	switch strings.ToLower(s.Provider) {
	case "", "gemini":
		cfg.Model = s.Gemini.Model
		cfg.Temperature = s.Gemini.Temperature
		return gemini.New(s.Gemini.APIKey), cfg, nil
	case "openai":
		cfg.Model = s.OpenAI.Model
		return openai.New(s.OpenAI.APIKey, s.OpenAI.BaseURL), cfg, nil
	case "ollama":
		cfg.Model = s.Ollama.Model
		return ollama.New(s.Ollama.URL), cfg, nil
	default:
		return nil, cfg, fmt.Errorf("unsupported provider: %s", s.Provider)
	}
}

// New wires every service. A Redis address switches the session store from memory to Redis.
func New(ctx context.Context, s config.Settings) (*App, error) {
	provider, cfg, err := NewProvider(s)
	if err != nil {
		return nil, err
	}

	a := &App{
		Settings:    s,
		Model:       cfg,
		Analyzer:    analysis.NewAnalyzer(provider, cfg),
		Interpreter: analysis.NewInterpreter(provider, cfg),
		Resolver:    furniture.NewARResolver(nil),
	}
	a.Deriver = keywords.NewDeriver(a.Interpreter)

	if s.Sketchfab.Token == "" {
		slog.Warn("SKETCHFAB_API_TOKEN not set, remote search may be rate limited")
	}
	client := sketchfab.NewClient(s.Sketchfab.Token, s.Sketchfab.BaseURL, s.Sketchfab.Timeout)
	a.Matcher = furniture.NewMatcher(client, s.Sketchfab.PageSize)
	a.Pipeline = pipeline.NewService(a.Analyzer, a.Deriver, a.Matcher)

	if s.Redis.Addr == "" {
		a.Store = storage.New()
	} else {
		store, err := storage.NewRedisStore(ctx, storage.RedisConfig{
			Addr:     s.Redis.Addr,
			Password: s.Redis.Password,
			DB:       s.Redis.DB,
			Prefix:   s.Redis.Prefix,
			TTL:      s.Redis.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect session store: %w", err)
		}
		a.Store = store
		a.closers = append(a.closers, store.Close)
	}

	slog.Info("Services ready", "provider", s.Provider, "model", cfg.Model, "redis", s.Redis.Addr != "")
	return a, nil
}

// Close releases external connections
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
