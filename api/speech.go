package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gesturecraft/notice"
	"gesturecraft/speech"
)

// speak plays a phrase through the host speech facility. Failures are shown
// to the user as a notice and not retried.
func (h *handler) speak(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s := sessionFrom(r)
	if err := h.speaker.Speak(r.Context(), req.Text); err != nil {
		if errors.Is(err, speech.ErrCapabilityUnavailable) {
			s.Notices().Publish(notice.Error, "Text-to-speech is not supported in this environment")
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		h.logger.Warn("speech failed", "session", s.ID, "err", err)
		s.Notices().Publish(notice.Error, "Could not play the phrase")
		http.Error(w, "speech failed", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
