package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gesturecraft/session"
	"gesturecraft/speech"
)

func RegisterRoutes(manager *session.Manager, speaker speech.Speaker, logger *slog.Logger) http.Handler {
	if speaker == nil {
		speaker = speech.Unavailable{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{manager: manager, speaker: speaker, logger: logger}

	r.Get("/api/health", h.health)
	r.Get("/api/encode", h.encode)

	// Login / logout
	r.Get("/api/sessions", h.listSessions)
	r.Post("/api/sessions", h.login)

	r.Route("/api/sessions/{sid}", func(r chi.Router) {
		r.Use(h.loadSession)

		r.Delete("/", h.logout)

		// WebSocket notice stream
		r.Get("/ws", h.handleWS)

		// Presets
		r.Get("/presets", h.getPresets)
		r.Post("/presets", h.createPreset)
		r.Patch("/presets/{pid}", h.updatePreset)
		r.Delete("/presets/{pid}", h.deletePreset)
		r.Post("/presets/{pid}/select", h.selectPreset)
		r.Delete("/presets/{pid}/gestures/{gid}", h.deleteGesture)

		// Saved gestures
		r.Get("/gestures", h.listGestures)
		r.Get("/stats", h.stats)

		// Editing session
		r.Get("/editor", h.getEditor)
		r.Put("/editor", h.putEditor)
		r.Post("/editor/fingers/{finger}/toggle", h.toggleFinger)
		r.Post("/editor/clear", h.clearEditor)
		r.Post("/editor/save", h.saveGesture)

		r.Post("/speak", h.speak)
	})

	return r
}

type handler struct {
	manager *session.Manager
	speaker speech.Speaker
	logger  *slog.Logger
}

type ctxKey struct{}

// loadSession resolves {sid} and stores the session in the request context.
func (h *handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.manager.Get(chi.URLParam(r, "sid"))
		if !ok {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, s)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	return r.Context().Value(ctxKey{}).(*session.Session)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
