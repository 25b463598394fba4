package websockets

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/chris/travel-payments/pkg/logger"
	"github.com/gorilla/websocket"
)

// DefaultWriteTimeout bounds each write to a local connection.
const DefaultWriteTimeout = 5 * time.Second

// Hub keeps the websocket connections of the local server in memory and
// publishes to them directly.
type Hub struct {
	mu           sync.Mutex
	conns        map[string]*websocket.Conn
	writeTimeout time.Duration
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		conns:        make(map[string]*websocket.Conn),
		writeTimeout: DefaultWriteTimeout,
	}
}

// Attach registers a connection under id.
func (h *Hub) Attach(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = conn
}

// Detach forgets a connection. The caller owns closing it.
func (h *Hub) Detach(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}

// Len returns the number of attached connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Publish writes message to every attached connection. Connections that fail
// the write or do not take it within the write timeout are detached.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	log := logger.FromContext(ctx)

	// Writes happen under the lock: a gorilla connection allows one writer at a time.
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.conns {
		if err := h.write(conn, payload); err != nil {
			log.Warn().Err(err).Str("connection_id", id).Msg("failed to write to local connection, detaching")
			// Closing ends the reader loop serving this connection.
			_ = conn.Close()
			delete(h.conns, id)
		}
	}
	return nil
}

func (h *Hub) write(conn *websocket.Conn, payload []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

var (
	_ Publisher = (*Hub)(nil)
	_ Publisher = (*DefaultPublisher)(nil)
)
