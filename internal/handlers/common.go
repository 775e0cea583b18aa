// Package handlers exposes the analysis pipeline, furniture search and scan sessions over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/pipeline"
	"github.com/vibear-app/vibear/internal/sketchfab"
	"github.com/vibear-app/vibear/internal/storage"
)

// MaxBodyBytes bounds request bodies; photos arrive base64 encoded
const MaxBodyBytes = 10 * 1024 * 1024

// Matcher is the furniture lookup the handlers need
type Matcher interface {
	Search(ctx context.Context, keywords []string) []models.FurnitureItem
	Model(ctx context.Context, id string) (models.FurnitureItem, error)
	Category(ctx context.Context, name string) []models.FurnitureItem
}

// Resolver picks the asset URL for AR viewing
type Resolver interface {
	Resolve(item models.FurnitureItem) string
}

// Runner runs the full capture pipeline
type Runner interface {
	Run(ctx context.Context, in pipeline.Input) pipeline.Result
}

// Services are the handler dependencies
type Services struct {
	Analyzer  pipeline.Analyzer
	Deriver   pipeline.Deriver
	Matcher   Matcher
	Resolver  Resolver
	Pipeline  Runner
	Store     storage.Store
	StaticDir string
}

type Handler struct {
	Services
}

func New(s Services) *Handler {
	if s.StaticDir == "" {
		s.StaticDir = "static"
	}
	return &Handler{Services: s}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	if code >= http.StatusInternalServerError {
		slog.Error(message, "status", code)
	} else {
		slog.Debug(message, "status", code)
	}
	h.writeJSON(w, code, errorResponse{Error: message})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, fmt.Sprintf("Request body too large (max %dMB)", MaxBodyBytes/1024/1024), http.StatusRequestEntityTooLarge)
			return false
		}
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeLookupError maps a failed model lookup to 404 or 502
func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sketchfab.ErrNotFound):
		h.writeError(w, err.Error(), http.StatusNotFound)
	default:
		h.writeError(w, err.Error(), http.StatusBadGateway)
	}
}
