package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vibear-app/vibear/internal/furniture"
	"github.com/vibear-app/vibear/internal/models"
)

type furnitureResponse struct {
	Results []models.FurnitureItem `json:"results"`
	// Fallback is true when the results are the bundled catalog
	Fallback bool `json:"fallback"`
}

type arResponse struct {
	URL    string           `json:"url"`
	Launch furniture.Launch `json:"launch"`
}

func newFurnitureResponse(items []models.FurnitureItem) furnitureResponse {
	return furnitureResponse{Results: items, Fallback: furniture.IsFallback(items)}
}

// HandleSearch takes comma-separated keywords, e.g. ?keywords=sofa,modern
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var keywords []string
	for _, k := range strings.Split(r.URL.Query().Get("keywords"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	h.writeJSON(w, http.StatusOK, newFurnitureResponse(h.Matcher.Search(r.Context(), keywords)))
}

func (h *Handler) HandleCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.writeJSON(w, http.StatusOK, newFurnitureResponse(h.Matcher.Category(r.Context(), category)))
}

func (h *Handler) HandleModel(w http.ResponseWriter, r *http.Request) {
	item, err := h.Matcher.Model(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, item)
}

// HandleAR resolves the viewable asset and the platform hand-off for the requesting device.
// ?page= overrides the Referer as the Scene Viewer fallback URL.
func (h *Handler) HandleAR(w http.ResponseWriter, r *http.Request) {
	item, err := h.Matcher.Model(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	modelURL := h.Resolver.Resolve(item)
	pageURL := r.URL.Query().Get("page")
	if pageURL == "" {
		pageURL = r.Referer()
	}

	h.writeJSON(w, http.StatusOK, arResponse{
		URL:    modelURL,
		Launch: furniture.HandOff(item, modelURL, r.UserAgent(), requestOrigin(r), pageURL),
	})
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
