package api

import (
	"net/http"

	"shadowme/css"
	"shadowme/preset"
	"shadowme/shadow"
)

type presetView struct {
	Name       string            `json:"name"`
	Properties shadow.Properties `json:"properties"`
	CSS        string            `json:"css"`
}

func (h *handler) getPresets(w http.ResponseWriter, r *http.Request) {
	all := preset.All()
	out := make([]presetView, 0, len(all))
	for _, p := range all {
		out = append(out, presetView{Name: p.Name, Properties: p.Properties, CSS: css.Shadow(p.Properties)})
	}
	writeJSON(w, http.StatusOK, out)
}
