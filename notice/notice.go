// Package notice carries transient user-facing messages ("toasts") from the
// workspace to whichever client is watching it.
package notice

import "time"

type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Warning Level = "warning"
	Error   Level = "error"
)

// Notice is a single message shown to the user.
type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Publisher accepts notices. *Feed implements it.
type Publisher interface {
	Publish(level Level, message string)
}

// Discard is a Publisher that drops everything.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Level, string) {}
