package preset

import (
	"errors"
	"time"

	"gesturecraft/gesture"
)

// Preset is a named context bundling its own gesture-to-phrase mappings.
type Preset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Seed describes a preset to create when a store is initialised.
type Seed struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Update holds the optional fields of an UpdatePreset call. Nil means
// "leave unchanged".
type Update struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SavedGesture is one phrase mapping inside a preset.
type SavedGesture struct {
	GestureID gesture.ID `json:"gestureId"`
	Phrase    string     `json:"phrase"`
	PresetID  string     `json:"presetId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Entry is a SavedGesture as returned by ListGestures, decorated with the
// owning preset's name and the selected finger names.
type Entry struct {
	SavedGesture
	PresetName string   `json:"presetName"`
	Fingers    []string `json:"fingers"`
}

// Filter restricts ListGestures. Zero value lists everything.
type Filter struct {
	PresetID string
	Search   string
}

// Stats summarises the gestures across all presets.
type Stats struct {
	Total          int `json:"total"`
	UniquePatterns int `json:"uniquePatterns"`
}

var (
	ErrNotFound         = errors.New("preset not found")
	ErrDuplicateName    = errors.New("a preset with this name already exists")
	ErrEmptyName        = errors.New("preset name is required")
	ErrLastPreset       = errors.New("cannot delete the last preset")
	ErrNoActivePreset   = errors.New("no active preset")
	ErrEmptySelection   = errors.New("gesture has no selected fingers")
	ErrEmptyPhrase      = errors.New("phrase is required")
	ErrInvalidGestureID = errors.New("invalid gesture id")
)
