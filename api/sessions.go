package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"shadowme/preset"
	"shadowme/saved"
	"shadowme/session"
	"shadowme/shadow"
)

func (h *handler) listSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.List())
}

func (h *handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.manager.Create(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyName):
			http.Error(w, "invalid request body", http.StatusBadRequest)
		case errors.Is(err, session.ErrNameTaken):
			http.Error(w, "session name already in use", http.StatusConflict)
		default:
			http.Error(w, "failed to create session", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *handler) killSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.manager.Kill(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to kill session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getShadow(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.State())
}

func (h *handler) updateShadow(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Field string `json:"field"`
		Value any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.Update(req.Field, req.Value); err != nil {
		if errors.Is(err, shadow.ErrUnknownField) || errors.Is(err, shadow.ErrInvalidValue) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to update shadow", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.State())
}

func (h *handler) resetShadow(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Reset()
	writeJSON(w, http.StatusOK, s.State())
}

func (h *handler) applyPreset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "invalid preset name", http.StatusBadRequest)
		return
	}
	p, err := preset.ByName(name)
	if err != nil {
		http.Error(w, "preset not found", http.StatusNotFound)
		return
	}
	s.ApplyPreset(p)
	writeJSON(w, http.StatusOK, s.State())
}

func (h *handler) saveCurrent(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state := s.State()
	entry, err := h.registry.Save(req.Name, state.Properties, state.CSS)
	if err != nil {
		switch {
		case errors.Is(err, saved.ErrEmptyName):
			http.Error(w, "please enter a name for your shadow", http.StatusBadRequest)
		case errors.Is(err, saved.ErrDuplicateName):
			http.Error(w, "a shadow with this name already exists", http.StatusConflict)
		default:
			http.Error(w, "failed to save shadow", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *handler) applySaved(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	entry, found := h.registry.Get(chi.URLParam(r, "savedID"))
	if !found {
		http.Error(w, "saved shadow not found", http.StatusNotFound)
		return
	}
	s.Apply(entry.Properties.Partial())
	writeJSON(w, http.StatusOK, s.State())
}
