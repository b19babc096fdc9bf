// Package editor implements the gesture editing session: the in-progress
// finger selection and phrase, the simulated save, and the preset operations
// that reset the draft when the active preset changes.
//
// After a successful save the phrase is cleared but the selection is kept.
// Switching to another preset discards both.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gesturecraft/gesture"
	"gesturecraft/notice"
	"gesturecraft/preset"
)

const DefaultSaveDelay = time.Second

var ErrBusy = errors.New("a save is already in progress")

// Draft is what a save writes: the phrase for a gesture in a preset.
type Draft struct {
	PresetID  string
	GestureID gesture.ID
	Phrase    string
}

// PersistFunc stands in for the remote call made before a gesture is stored.
// A non-nil error aborts the save and leaves the store untouched.
type PersistFunc func(ctx context.Context, d Draft) error

// Simulated returns a PersistFunc that waits for delay and succeeds. The wait
// ignores ctx: an in-flight save cannot be aborted.
func Simulated(delay time.Duration) PersistFunc {
	return func(context.Context, Draft) error {
		if delay > 0 {
			time.Sleep(delay)
		}
		return nil
	}
}

// State is a point-in-time view of the editor.
type State struct {
	Selection      gesture.Selection `json:"selection"`
	Fingers        []string          `json:"fingers"`
	GestureID      gesture.ID        `json:"gestureId"`
	Binary         string            `json:"binary"`
	Phrase         string            `json:"phrase"`
	Busy           bool              `json:"busy"`
	ActivePreset   *preset.Preset    `json:"activePreset"`
	ExistingPhrase string            `json:"existingPhrase,omitempty"`
}

// Editor is safe for concurrent use.
type Editor struct {
	store   *preset.Store
	notices notice.Publisher
	persist PersistFunc

	mu        sync.Mutex
	selection gesture.Selection
	phrase    string
	busy      bool
}

type Option func(*Editor)

// WithPersist replaces the simulated save step.
func WithPersist(fn PersistFunc) Option {
	return func(e *Editor) { e.persist = fn }
}

// WithSaveDelay sets the simulated save duration.
func WithSaveDelay(d time.Duration) Option {
	return func(e *Editor) { e.persist = Simulated(d) }
}

func New(store *preset.Store, notices notice.Publisher, opts ...Option) *Editor {
	if notices == nil {
		notices = notice.Discard
	}
	e := &Editor{
		store:   store,
		notices: notices,
		persist: Simulated(DefaultSaveDelay),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the preset store the editor writes to.
func (e *Editor) Store() *preset.Store { return e.store }

// State returns the current selection, phrase and derived fields.
func (e *Editor) State() State {
	e.mu.Lock()
	sel, phrase, busy := e.selection, e.phrase, e.busy
	e.mu.Unlock()

	id := gesture.Encode(sel)
	st := State{
		Selection: sel,
		Fingers:   sel.Names(),
		GestureID: id,
		Binary:    id.Binary(),
		Phrase:    phrase,
		Busy:      busy,
	}
	if active, ok := e.store.Active(); ok {
		st.ActivePreset = &active
		if g, ok := e.store.Gesture(active.ID, id); ok {
			st.ExistingPhrase = g.Phrase
		}
	}
	return st
}

// Toggle flips one finger in the selection.
func (e *Editor) Toggle(f gesture.Finger) State {
	e.mu.Lock()
	e.selection = e.selection.Toggle(f)
	e.mu.Unlock()
	return e.afterSelect()
}

// SetSelection replaces the whole selection.
func (e *Editor) SetSelection(sel gesture.Selection) State {
	e.mu.Lock()
	e.selection = sel
	e.mu.Unlock()
	return e.afterSelect()
}

// SetPhrase replaces the phrase text. It is stored untrimmed, as typed.
func (e *Editor) SetPhrase(phrase string) State {
	e.mu.Lock()
	e.phrase = phrase
	e.mu.Unlock()
	return e.State()
}

// Clear discards the selection and phrase.
func (e *Editor) Clear() State {
	e.reset()
	e.notices.Publish(notice.Info, "Gesture cleared")
	return e.State()
}

// afterSelect warns when the new selection already has a phrase in the
// active preset. The warning is advisory; Save overwrites regardless.
func (e *Editor) afterSelect() State {
	st := e.State()
	if st.ExistingPhrase != "" && !st.Selection.IsEmpty() {
		e.notices.Publish(notice.Warning, fmt.Sprintf(
			"This gesture already has a phrase: %q. Saving will overwrite the existing phrase.", st.ExistingPhrase))
	}
	return st
}

// Save writes the current phrase for the current selection into the active
// preset. Only one save may be pending at a time; a second call while busy
// returns ErrBusy.
func (e *Editor) Save(ctx context.Context) (preset.SavedGesture, error) {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return preset.SavedGesture{}, ErrBusy
	}
	if e.selection.IsEmpty() {
		e.mu.Unlock()
		e.notices.Publish(notice.Error, "Please select at least one finger")
		return preset.SavedGesture{}, preset.ErrEmptySelection
	}
	phrase := strings.TrimSpace(e.phrase)
	if phrase == "" {
		e.mu.Unlock()
		e.notices.Publish(notice.Error, "Please enter a phrase for this gesture")
		return preset.SavedGesture{}, preset.ErrEmptyPhrase
	}
	active, ok := e.store.Active()
	if !ok {
		e.mu.Unlock()
		e.notices.Publish(notice.Error, "Please select a preset first")
		return preset.SavedGesture{}, preset.ErrNoActivePreset
	}
	d := Draft{PresetID: active.ID, GestureID: gesture.Encode(e.selection), Phrase: phrase}
	e.busy = true
	e.mu.Unlock()

	g, err := e.commit(ctx, d)

	e.mu.Lock()
	e.busy = false
	if err == nil {
		e.phrase = ""
	}
	e.mu.Unlock()

	if err != nil {
		e.notices.Publish(notice.Error, "Failed to save gesture. Please try again.")
		return preset.SavedGesture{}, fmt.Errorf("save gesture %s: %w", d.GestureID, err)
	}
	e.notices.Publish(notice.Success, fmt.Sprintf("Gesture %s saved successfully!", d.GestureID))
	return g, nil
}

func (e *Editor) commit(ctx context.Context, d Draft) (preset.SavedGesture, error) {
	if err := e.persist(ctx, d); err != nil {
		return preset.SavedGesture{}, err
	}
	g, _, err := e.store.SaveGesture(d.PresetID, d.GestureID, d.Phrase)
	return g, err
}

func (e *Editor) reset() {
	e.mu.Lock()
	e.selection = 0
	e.phrase = ""
	e.mu.Unlock()
}
