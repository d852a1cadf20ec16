package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *handler) listSaved(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.List())
}

func (h *handler) deleteSaved(w http.ResponseWriter, r *http.Request) {
	// Delete silently ignores unknown ids.
	h.registry.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
