package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vibear-app/vibear/internal/advice"
	"github.com/vibear-app/vibear/internal/models"
	"github.com/vibear-app/vibear/internal/pipeline"
	"github.com/vibear-app/vibear/internal/session"
	"github.com/vibear-app/vibear/internal/storage"
)

type scanRequest struct {
	Image   string `json:"image"`
	Context string `json:"context"`
}

type sessionAnalyzeRequest struct {
	Query string `json:"query"`
}

type placeRequest struct {
	FurnitureID string `json:"furnitureId"`
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New()
	if err := h.Store.Set(r.Context(), sess); err != nil {
		h.writeError(w, "Failed to save session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	slog.Info("Session created", "session_id", sess.ID)
	h.writeJSON(w, http.StatusCreated, sess)
}

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Store.List(r.Context())
	if err != nil {
		h.writeError(w, "Failed to list sessions: "+err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, sessions)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, "Failed to delete session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	var request scanRequest
	if !h.decode(w, r, &request) {
		return
	}
	if strings.TrimSpace(request.Image) == "" {
		h.writeError(w, "image is required", http.StatusBadRequest)
		return
	}

	h.transition(w, r, func(s *session.Session) error {
		return s.Scan(request.Image, request.Context)
	})
}

// HandleSessionAnalyze runs the pipeline on the session's photo. The session is saved as
// analyzing first so concurrent readers see the step in progress.
func (h *Handler) HandleSessionAnalyze(w http.ResponseWriter, r *http.Request) {
	var request sessionAnalyzeRequest
	if r.ContentLength != 0 && !h.decode(w, r, &request) {
		return
	}

	sess, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	if err := sess.BeginAnalysis(request.Query); err != nil {
		h.writeTransitionError(w, err)
		return
	}
	if !h.save(w, r, sess) {
		return
	}

	result := h.Pipeline.Run(r.Context(), pipeline.Input{
		Image:   sess.Photo,
		Context: sess.Context,
		Query:   request.Query,
	})

	if err := r.Context().Err(); err != nil {
		slog.Warn("Analysis abandoned", "session_id", sess.ID, "error", err)
		if err := sess.FailAnalysis(); err != nil {
			slog.Error("Failed to reset abandoned analysis", "session_id", sess.ID, "error", err)
		}
		if err := h.Store.Set(context.WithoutCancel(r.Context()), sess); err != nil {
			slog.Error("Failed to save session", "session_id", sess.ID, "error", err)
		}
		return
	}

	if err := sess.Suggest(result.Analysis, result.Keywords, result.Furniture, result.Reply); err != nil {
		h.writeTransitionError(w, err)
		return
	}
	if !h.save(w, r, sess) {
		return
	}
	h.writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	var request placeRequest
	if !h.decode(w, r, &request) {
		return
	}
	if request.FurnitureID == "" {
		h.writeError(w, "furnitureId is required", http.StatusBadRequest)
		return
	}

	sess, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	item, found := findItem(sess.Furniture, request.FurnitureID)
	if !found {
		var err error
		item, err = h.Matcher.Model(r.Context(), request.FurnitureID)
		if err != nil {
			h.writeLookupError(w, err)
			return
		}
	}

	if err := sess.Place(item, advice.Explain(sess.Analysis, item, nil)); err != nil {
		h.writeTransitionError(w, err)
		return
	}
	if !h.save(w, r, sess) {
		return
	}
	h.writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, (*session.Session).Back)
}

func (h *Handler) HandleRetake(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(s *session.Session) error {
		s.Retake()
		return nil
	})
}

// transition loads the session, applies event and saves the result
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, event func(s *session.Session) error) {
	sess, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	if err := event(sess); err != nil {
		h.writeTransitionError(w, err)
		return
	}
	if !h.save(w, r, sess) {
		return
	}
	h.writeJSON(w, http.StatusOK, sess)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := h.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrSessionNotFound) {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		h.writeError(w, "Failed to load session: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	if err := h.Store.Set(r.Context(), sess); err != nil {
		h.writeError(w, "Failed to save session: "+err.Error(), http.StatusInternalServerError)
		return false
	}
	return true
}

func (h *Handler) writeTransitionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrInvalidTransition) {
		h.writeError(w, err.Error(), http.StatusConflict)
		return
	}
	h.writeError(w, err.Error(), http.StatusInternalServerError)
}

func findItem(items []models.FurnitureItem, id string) (models.FurnitureItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.FurnitureItem{}, false
}
