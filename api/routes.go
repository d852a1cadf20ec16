package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shadowme/saved"
	"shadowme/session"
)

func RegisterRoutes(manager *session.Manager, registry *saved.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{manager: manager, registry: registry}

	// Catalogs
	r.Get("/api/presets", h.getPresets)
	r.Get("/api/saved", h.listSaved)
	r.Delete("/api/saved/{id}", h.deleteSaved)

	// Editor sessions
	r.Get("/api/sessions", h.listSessions)
	r.Post("/api/sessions", h.createSession)
	r.Delete("/api/sessions/{id}", h.killSession)

	r.Get("/api/sessions/{id}/shadow", h.getShadow)
	r.Patch("/api/sessions/{id}/shadow", h.updateShadow)
	r.Post("/api/sessions/{id}/reset", h.resetShadow)
	r.Post("/api/sessions/{id}/presets/{name}/apply", h.applyPreset)
	r.Post("/api/sessions/{id}/saved", h.saveCurrent)
	r.Post("/api/sessions/{id}/saved/{savedID}/apply", h.applySaved)

	// WebSocket
	r.Get("/api/sessions/{id}/ws", h.handleWS)

	return r
}

type handler struct {
	manager  *session.Manager
	registry *saved.Registry
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// session resolves the {id} URL parameter, writing a 404 when it is unknown.
func (h *handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := h.manager.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
	}
	return s, ok
}
