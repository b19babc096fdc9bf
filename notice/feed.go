package notice

import (
	"sync"
	"time"
)

// Feed records notices and forwards them to at most one live client.
type Feed struct {
	history *history
	now     func() time.Time

	mu       sync.Mutex
	outChan  chan Notice
	kickChan chan struct{}
}

// NewFeed returns a feed that keeps the last max notices (DefaultHistory if
// max <= 0).
func NewFeed(max int) *Feed {
	return &Feed{history: newHistory(max), now: time.Now}
}

// Publish records a notice and hands it to the live client, if any. It never
// blocks: a client that is not keeping up misses the live copy but still sees
// it in History.
func (f *Feed) Publish(level Level, message string) {
	n := Notice{Level: level, Message: message, Time: f.now()}
	f.history.Add(n)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.outChan != nil {
		select {
		case f.outChan <- n:
		default:
		}
	}
}

// History returns a copy of the retained notices, oldest first.
func (f *Feed) History() []Notice {
	return f.history.Snapshot()
}

// Subscribe registers ch to receive live notices. A previously subscribed
// client is displaced: its kick channel is closed. The returned channel is
// closed if this client is itself displaced later.
func (f *Feed) Subscribe(ch chan Notice) <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.kickChan != nil {
		close(f.kickChan)
	}
	kick := make(chan struct{})
	f.kickChan = kick
	f.outChan = ch
	return kick
}

// Unsubscribe ends a subscription. It only clears feed state if ch is still
// the current subscriber, so a displaced client cannot detach a newer one.
// ch is always closed.
func (f *Feed) Unsubscribe(ch chan Notice) {
	f.mu.Lock()
	if f.outChan == ch {
		f.outChan = nil
		f.kickChan = nil
	}
	f.mu.Unlock()
	close(ch)
}

// Connected reports whether a client is subscribed.
func (f *Feed) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outChan != nil
}
