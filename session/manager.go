package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gesturecraft/editor"
	"gesturecraft/notice"
	"gesturecraft/preset"
)

var (
	ErrInvalidCredentials = errors.New("username and password are required")
	ErrNotFound           = errors.New("session not found")
)

// Options configures the workspaces handed to new sessions.
type Options struct {
	// Presets seeds each workspace; the first one is active. Defaults to a
	// single "Default" preset.
	Presets       []preset.Seed
	SaveDelay     time.Duration
	LoginDelay    time.Duration
	NoticeHistory int
	// Persist overrides the simulated save step. Mostly for tests.
	Persist editor.PersistFunc
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
}

func NewManager(opts Options) *Manager {
	if len(opts.Presets) == 0 {
		opts.Presets = []preset.Seed{{Name: "Default"}}
	}
	return &Manager{sessions: make(map[string]*Session), opts: opts}
}

// Create signs a user in. Any non-blank username and password are accepted
// after the configured login delay.
func (m *Manager) Create(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if m.opts.LoginDelay > 0 {
		t := time.NewTimer(m.opts.LoginDelay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		}
	}

	store, err := m.newStore()
	if err != nil {
		return nil, err
	}
	feed := notice.NewFeed(m.opts.NoticeHistory)
	edOpts := []editor.Option{editor.WithSaveDelay(m.opts.SaveDelay)}
	if m.opts.Persist != nil {
		edOpts = append(edOpts, editor.WithPersist(m.opts.Persist))
	}

	s := &Session{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
		editor:    editor.New(store, feed, edOpts...),
		notices:   feed,
		done:      make(chan struct{}),
	}
	feed.Publish(notice.Success, "Welcome to GestureCraft!")

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) newStore() (*preset.Store, error) {
	seeds := m.opts.Presets
	store, err := preset.NewStore(seeds[0])
	if err != nil {
		return nil, err
	}
	first, _ := store.Active()
	for _, seed := range seeds[1:] {
		if _, err := store.CreatePreset(seed.Name, seed.Description); err != nil {
			return nil, fmt.Errorf("seed preset %q: %w", seed.Name, err)
		}
	}
	if err := store.SelectPreset(first.ID); err != nil {
		return nil, err
	}
	return store, nil
}

// List returns all sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Kill logs a session out. Its workspace is discarded.
func (m *Manager) Kill(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.close()
	delete(m.sessions, id)
	return nil
}
