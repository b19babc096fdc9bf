package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gesturecraft/preset"
)

type presetsResponse struct {
	Presets        []preset.Preset `json:"presets"`
	ActivePresetID string          `json:"activePresetId"`
}

func (h *handler) getPresets(w http.ResponseWriter, r *http.Request) {
	store := sessionFrom(r).Editor().Store()
	resp := presetsResponse{Presets: store.Presets()}
	if active, ok := store.Active(); ok {
		resp.ActivePresetID = active.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) createPreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := sessionFrom(r).Editor().CreatePreset(req.Name, req.Description)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *handler) updatePreset(w http.ResponseWriter, r *http.Request) {
	var u preset.Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := sessionFrom(r).Editor().UpdatePreset(chi.URLParam(r, "pid"), u)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *handler) deletePreset(w http.ResponseWriter, r *http.Request) {
	if err := sessionFrom(r).Editor().DeletePreset(chi.URLParam(r, "pid")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) selectPreset(w http.ResponseWriter, r *http.Request) {
	p, err := sessionFrom(r).Editor().SelectPreset(chi.URLParam(r, "pid"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
