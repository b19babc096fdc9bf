package api

import (
	"encoding/json"
	"net/http"
)

func (h *handler) listSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.List())
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.manager.Create(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Info("session created", "session", s.ID, "username", s.Username)
	writeJSON(w, http.StatusCreated, s)
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := h.manager.Kill(s.ID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.logger.Info("session closed", "session", s.ID)
	w.WriteHeader(http.StatusNoContent)
}
