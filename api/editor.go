package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gesturecraft/gesture"
)

func (h *handler) getEditor(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Editor().State())
}

// putEditor replaces the selection and/or phrase. Omitted fields are kept.
func (h *handler) putEditor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fingers *gesture.Selection `json:"fingers"`
		Phrase  *string            `json:"phrase"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ed := sessionFrom(r).Editor()
	if req.Fingers != nil {
		ed.SetSelection(*req.Fingers)
	}
	if req.Phrase != nil {
		ed.SetPhrase(*req.Phrase)
	}
	writeJSON(w, http.StatusOK, ed.State())
}

func (h *handler) toggleFinger(w http.ResponseWriter, r *http.Request) {
	f, err := gesture.ParseFinger(chi.URLParam(r, "finger"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionFrom(r).Editor().Toggle(f))
}

func (h *handler) clearEditor(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Editor().Clear())
}

// saveGesture blocks for the simulated save delay.
func (h *handler) saveGesture(w http.ResponseWriter, r *http.Request) {
	g, err := sessionFrom(r).Editor().Save(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
