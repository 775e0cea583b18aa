package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Routes returns the HTTP API router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestSize(MaxBodyBytes))

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", h.HandleAnalyze)
		r.Post("/keywords", h.HandleKeywords)
		r.Post("/pipeline", h.HandlePipeline)

		r.Route("/furniture", func(r chi.Router) {
			r.Get("/", h.HandleSearch)
			r.Get("/categories/{category}", h.HandleCategory)
			r.Get("/{id}", h.HandleModel)
			r.Get("/{id}/ar", h.HandleAR)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.HandleCreateSession)
			r.Get("/", h.HandleListSessions)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.HandleGetSession)
				r.Delete("/", h.HandleDeleteSession)
				r.Post("/scan", h.HandleScan)
				r.Post("/analyze", h.HandleSessionAnalyze)
				r.Post("/place", h.HandlePlace)
				r.Post("/back", h.HandleBack)
				r.Post("/retake", h.HandleRetake)
			})
		})
	})

	static := http.StripPrefix("/static/", http.FileServer(http.Dir(h.StaticDir)))
	r.Handle("/static/*", static)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.StaticDir, "index.html"))
	})

	return r
}
