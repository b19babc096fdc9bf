package notice

import "sync"

const DefaultHistory = 50

// history is a bounded buffer of the most recent notices.
type history struct {
	mu    sync.Mutex
	items []Notice
	max   int
}

func newHistory(max int) *history {
	if max <= 0 {
		max = DefaultHistory
	}
	return &history{max: max}
}

func (h *history) Add(n Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, n)
	if len(h.items) > h.max {
		excess := len(h.items) - h.max
		h.items = h.items[excess:]
	}
}

func (h *history) Snapshot() []Notice {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.items) == 0 {
		return nil
	}
	cp := make([]Notice, len(h.items))
	copy(cp, h.items)
	return cp
}
