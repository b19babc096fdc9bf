package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"gesturecraft/gesture"
	"gesturecraft/preset"
)

type encodeResponse struct {
	GestureID gesture.ID `json:"gestureId"`
	Binary    string     `json:"binary"`
	Fingers   []string   `json:"fingers"`
}

// encode answers GET /api/encode?fingers=index,middle.
func (h *handler) encode(w http.ResponseWriter, r *http.Request) {
	var names []string
	if raw := r.URL.Query().Get("fingers"); raw != "" {
		names = strings.Split(raw, ",")
	}
	sel, err := gesture.ParseFingers(names)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id := gesture.Encode(sel)
	writeJSON(w, http.StatusOK, encodeResponse{GestureID: id, Binary: id.Binary(), Fingers: sel.Names()})
}

func (h *handler) listGestures(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	presetID := q.Get("preset")
	if presetID == "all" {
		presetID = ""
	}
	entries := sessionFrom(r).Editor().Store().ListGestures(preset.Filter{
		PresetID: presetID,
		Search:   q.Get("q"),
	})
	writeJSON(w, http.StatusOK, entries)
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Editor().Store().Stats())
}

func (h *handler) deleteGesture(w http.ResponseWriter, r *http.Request) {
	id := gesture.ID(chi.URLParam(r, "gid"))
	if !id.Valid() {
		h.writeError(w, r, gesture.ErrInvalidID)
		return
	}
	sessionFrom(r).Editor().DeleteGesture(chi.URLParam(r, "pid"), id)
	w.WriteHeader(http.StatusNoContent)
}
