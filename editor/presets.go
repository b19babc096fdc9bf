package editor

import (
	"errors"
	"fmt"

	"gesturecraft/gesture"
	"gesturecraft/notice"
	"gesturecraft/preset"
)

// CreatePreset adds a preset, which becomes active; the draft is discarded.
func (e *Editor) CreatePreset(name, description string) (preset.Preset, error) {
	p, err := e.store.CreatePreset(name, description)
	if err != nil {
		e.fail(err)
		return preset.Preset{}, err
	}
	e.reset()
	e.notices.Publish(notice.Success, fmt.Sprintf("Preset %q created successfully!", p.Name))
	return p, nil
}

// SelectPreset switches the active preset and discards the unsaved draft.
// Saved gestures are untouched.
func (e *Editor) SelectPreset(id string) (preset.Preset, error) {
	if err := e.store.SelectPreset(id); err != nil {
		e.fail(err)
		return preset.Preset{}, err
	}
	e.reset()
	p, _ := e.store.Preset(id)
	return p, nil
}

func (e *Editor) UpdatePreset(id string, u preset.Update) (preset.Preset, error) {
	p, err := e.store.UpdatePreset(id, u)
	if err != nil {
		e.fail(err)
		return preset.Preset{}, err
	}
	e.notices.Publish(notice.Success, "Preset updated successfully!")
	return p, nil
}

// DeletePreset removes a preset and its gestures. If it was the active
// preset the store activates another one and the draft is discarded.
func (e *Editor) DeletePreset(id string) error {
	p, _ := e.store.Preset(id)
	before, _ := e.store.Active()
	if err := e.store.DeletePreset(id); err != nil {
		e.fail(err)
		return err
	}
	if after, _ := e.store.Active(); after.ID != before.ID {
		e.reset()
	}
	e.notices.Publish(notice.Success, fmt.Sprintf("Preset %q deleted", p.Name))
	return nil
}

func (e *Editor) DeleteGesture(presetID string, id gesture.ID) {
	e.store.DeleteGesture(presetID, id)
	e.notices.Publish(notice.Success, "Gesture deleted successfully")
}

// fail reports a preset store error to the user.
func (e *Editor) fail(err error) {
	var msg string
	switch {
	case errors.Is(err, preset.ErrEmptyName):
		msg = "Please enter a preset name"
	case errors.Is(err, preset.ErrDuplicateName):
		msg = "A preset with this name already exists"
	case errors.Is(err, preset.ErrLastPreset):
		msg = "Cannot delete the last preset"
	case errors.Is(err, preset.ErrNotFound):
		msg = "Preset not found"
	default:
		msg = err.Error()
	}
	e.notices.Publish(notice.Error, msg)
}
