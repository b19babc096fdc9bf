package session

import (
	"encoding/json"
	"sync"
	"time"

	"gesturecraft/editor"
	"gesturecraft/notice"
)

// Session is one signed-in user and the workspace they are editing. The
// workspace lives only as long as the session does.
type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time

	editor  *editor.Editor
	notices *notice.Feed

	closeOnce sync.Once
	done      chan struct{}
}

// Editor returns the session's editing state and preset store.
func (s *Session) Editor() *editor.Editor { return s.editor }

// Notices returns the session's notice feed.
func (s *Session) Notices() *notice.Feed { return s.notices }

// Done returns a channel that is closed when the session is logged out.
func (s *Session) Done() <-chan struct{} { return s.done }

func (s *Session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"created_at"`
		Connected bool      `json:"connected"`
	}{s.ID, s.Username, s.CreatedAt, s.notices.Connected()})
}
