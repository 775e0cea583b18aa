package handlers

import (
	"net/http"
	"strings"

	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/pipeline"
)

type analyzeRequest struct {
	Image   string `json:"image"`
	Context string `json:"context"`
}

type keywordsRequest struct {
	Analysis models.RoomAnalysis `json:"analysis"`
	Query    string              `json:"query"`
}

type keywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// HandleAnalyze always answers 200 with an analysis once the request is well formed;
// analysis failures come back as the failure record.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var request analyzeRequest
	if !h.decode(w, r, &request) {
		return
	}
	if strings.TrimSpace(request.Image) == "" {
		h.writeError(w, "image is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, h.Analyzer.Analyze(r.Context(), request.Image, request.Context))
}

func (h *Handler) HandleKeywords(w http.ResponseWriter, r *http.Request) {
	var request keywordsRequest
	if !h.decode(w, r, &request) {
		return
	}

	keywords := h.Deriver.Derive(r.Context(), request.Analysis, request.Query)
	if keywords == nil {
		keywords = []string{}
	}
	h.writeJSON(w, http.StatusOK, keywordsResponse{Keywords: keywords})
}

func (h *Handler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	var request pipeline.Input
	if !h.decode(w, r, &request) {
		return
	}
	if strings.TrimSpace(request.Image) == "" {
		h.writeError(w, "image is required", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, h.Pipeline.Run(r.Context(), request))
}
