package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gesturecraft/editor"
	"gesturecraft/gesture"
	"gesturecraft/preset"
	"gesturecraft/session"
	"gesturecraft/speech"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error onto an HTTP status. Unexpected errors are
// logged and reported without detail.
func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, preset.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, preset.ErrDuplicateName),
		errors.Is(err, preset.ErrLastPreset),
		errors.Is(err, preset.ErrNoActivePreset),
		errors.Is(err, editor.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidCredentials),
		errors.Is(err, preset.ErrEmptyName),
		errors.Is(err, preset.ErrEmptyPhrase),
		errors.Is(err, preset.ErrEmptySelection),
		errors.Is(err, preset.ErrInvalidGestureID),
		errors.Is(err, gesture.ErrInvalidID),
		errors.Is(err, gesture.ErrUnknownFinger):
		return http.StatusBadRequest
	case errors.Is(err, speech.ErrCapabilityUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
