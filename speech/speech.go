// Package speech speaks phrases aloud through whatever facility the host
// provides. Speaking is fire-and-forget: callers report a failure to the user
// and do not retry.
package speech

import (
	"context"
	"errors"
)

var ErrCapabilityUnavailable = errors.New("text-to-speech is not available")

// Speaker speaks text.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Unavailable is the Speaker used when speech output is disabled.
type Unavailable struct{}

func (Unavailable) Speak(context.Context, string) error {
	return ErrCapabilityUnavailable
}
