package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"gesturecraft/notice"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsMessage struct {
	Type    string          `json:"type"`
	Notice  *notice.Notice  `json:"notice,omitempty"`
	Notices []notice.Notice `json:"notices,omitempty"`
}

// handleWS streams a session's notices. On connect the retained history is
// sent as one "history" message, then each new notice as a "notice" message.
// A "closed" message is sent when the session is logged out.
func (h *handler) handleWS(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", "session", s.ID, "err", err)
		return
	}
	defer conn.Close()

	// gorilla/websocket forbids concurrent writes.
	var writeMu sync.Mutex
	writeMsg := func(msg wsMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}

	feed := s.Notices()
	outChan := make(chan notice.Notice, 64)
	kick := feed.Subscribe(outChan) // kicks any prior client
	defer feed.Unsubscribe(outChan) // closes outChan

	if hist := feed.History(); len(hist) > 0 {
		if err := writeMsg(wsMessage{Type: "history", Notices: hist}); err != nil {
			h.logger.Warn("ws history replay failed", "session", s.ID, "err", err)
			return
		}
	}

	// Pump live notices. Exits when Unsubscribe closes outChan.
	go func() {
		for n := range outChan {
			n := n
			if err := writeMsg(wsMessage{Type: "notice", Notice: &n}); err != nil {
				return
			}
		}
	}()

	// Close the connection on logout or displacement so ReadMessage below
	// unblocks.
	connDone := make(chan struct{})
	go func() {
		select {
		case <-s.Done():
			writeMsg(wsMessage{Type: "closed"}) //nolint:errcheck
			conn.Close()
		case <-kick:
			conn.Close()
		case <-connDone:
		}
	}()
	defer close(connDone)

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type == "ping" {
			if err := writeMsg(wsMessage{Type: "pong"}); err != nil {
				return
			}
		}
	}
}
