package preset

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gesturecraft/gesture"
)

// Store holds the presets of one workspace and the gestures saved under each
// of them. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	presets  []Preset // insertion order
	gestures map[string]map[gesture.ID]SavedGesture
	activeID string

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc replaces the uuid generator used for preset ids.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore creates a store holding a single preset built from seed, which
// becomes the active preset.
func NewStore(seed Seed, opts ...Option) (*Store, error) {
	s := &Store{
		gestures: make(map[string]map[gesture.ID]SavedGesture),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := s.CreatePreset(seed.Name, seed.Description); err != nil {
		return nil, fmt.Errorf("default preset: %w", err)
	}
	return s, nil
}

// CreatePreset adds a preset and makes it active.
func (s *Store) CreatePreset(name, description string) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTakenLocked(name, "") {
		return Preset{}, ErrDuplicateName
	}
	p := Preset{
		ID:          s.newID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.now(),
	}
	s.presets = append(s.presets, p)
	s.gestures[p.ID] = make(map[gesture.ID]SavedGesture)
	s.activeID = p.ID
	return p, nil
}

// SelectPreset makes id the active preset.
func (s *Store) SelectPreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(id) < 0 {
		return ErrNotFound
	}
	s.activeID = id
	return nil
}

// UpdatePreset changes the name and/or description of a preset.
func (s *Store) UpdatePreset(id string, u Update) (Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Preset{}, ErrNotFound
	}
	p := s.presets[i]
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return Preset{}, ErrEmptyName
		}
		if s.nameTakenLocked(name, id) {
			return Preset{}, ErrDuplicateName
		}
		p.Name = name
	}
	if u.Description != nil {
		p.Description = strings.TrimSpace(*u.Description)
	}
	s.presets[i] = p
	return p, nil
}

// DeletePreset removes a preset together with every gesture saved under it.
// The last remaining preset cannot be deleted. When the active preset is
// deleted, the oldest remaining preset becomes active.
func (s *Store) DeletePreset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return ErrNotFound
	}
	if len(s.presets) <= 1 {
		return ErrLastPreset
	}

	s.presets = append(s.presets[:i:i], s.presets[i+1:]...)
	delete(s.gestures, id)
	if s.activeID == id {
		s.activeID = s.oldestLocked().ID
	}
	return nil
}

// Active returns the active preset.
func (s *Store) Active() (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(s.activeID)
	if i < 0 {
		return Preset{}, false
	}
	return s.presets[i], true
}

// Preset returns the preset with the given id.
func (s *Store) Preset(id string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return Preset{}, false
	}
	return s.presets[i], true
}

// Presets returns a copy of all presets in creation order.
func (s *Store) Presets() []Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preset, len(s.presets))
	copy(out, s.presets)
	return out
}

// SaveGesture inserts or overwrites the phrase for gestureID in presetID.
// The second return value reports whether an existing mapping was replaced;
// warning the user about that is the caller's job.
func (s *Store) SaveGesture(presetID string, gestureID gesture.ID, phrase string) (SavedGesture, bool, error) {
	sel, err := gesture.Decode(gestureID)
	if err != nil {
		return SavedGesture{}, false, ErrInvalidGestureID
	}
	if sel.IsEmpty() {
		return SavedGesture{}, false, ErrEmptySelection
	}
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return SavedGesture{}, false, ErrEmptyPhrase
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.gestures[presetID]
	if presetID == "" || !ok {
		return SavedGesture{}, false, ErrNoActivePreset
	}
	_, existed := m[gestureID]
	now := s.now()
	g := SavedGesture{
		GestureID: gestureID,
		Phrase:    phrase,
		PresetID:  presetID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m[gestureID] = g
	return g, existed, nil
}

// Gesture looks up a saved gesture.
func (s *Store) Gesture(presetID string, gestureID gesture.ID) (SavedGesture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gestures[presetID][gestureID]
	return g, ok
}

// DeleteGesture removes a saved gesture. Removing an absent gesture is a no-op.
func (s *Store) DeleteGesture(presetID string, gestureID gesture.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.gestures[presetID], gestureID)
}

// ListGestures returns saved gestures matching f, most recently updated
// first. Search matches case-insensitively against the phrase, the gesture
// id, the preset name and the names of the selected fingers.
func (s *Store) ListGestures(f Filter) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := []Entry{}
	for _, p := range s.presets {
		if f.PresetID != "" && p.ID != f.PresetID {
			continue
		}
		for _, id := range sortedIDs(s.gestures[p.ID]) {
			e := Entry{
				SavedGesture: s.gestures[p.ID][id],
				PresetName:   p.Name,
				Fingers:      id.Fingers(),
			}
			if search != "" && !e.matches(search) {
				continue
			}
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Stats counts all saved gestures and the distinct finger patterns among them.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st Stats
	unique := make(map[gesture.ID]struct{})
	for _, m := range s.gestures {
		st.Total += len(m)
		for id := range m {
			unique[id] = struct{}{}
		}
	}
	st.UniquePatterns = len(unique)
	return st
}

func (e Entry) matches(search string) bool {
	if strings.Contains(strings.ToLower(e.Phrase), search) ||
		strings.Contains(strings.ToLower(string(e.GestureID)), search) ||
		strings.Contains(strings.ToLower(e.PresetName), search) {
		return true
	}
	for _, name := range e.Fingers {
		if strings.Contains(strings.ToLower(name), search) {
			return true
		}
	}
	return false
}

func (s *Store) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range s.presets {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// nameTakenLocked reports whether a preset other than exceptID already uses name.
func (s *Store) nameTakenLocked(name, exceptID string) bool {
	for _, p := range s.presets {
		if p.ID != exceptID && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// oldestLocked returns the preset with the lowest CreatedAt; ties go to the
// one inserted first. Caller guarantees at least one preset.
func (s *Store) oldestLocked() Preset {
	oldest := s.presets[0]
	for _, p := range s.presets[1:] {
		if p.CreatedAt.Before(oldest.CreatedAt) {
			oldest = p
		}
	}
	return oldest
}

func sortedIDs(m map[gesture.ID]SavedGesture) []gesture.ID {
	ids := make([]gesture.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
