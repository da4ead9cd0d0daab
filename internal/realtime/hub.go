// Package realtime pushes store change events to connected clients over
// websockets. Open views subscribe once and refetch whatever a change event
// tells them went stale, which replaces the in-process re-render cycle the
// original browser app got for free.
package realtime

import (
	"log"
	"net/http"
	"sync"

	"anoa.com/ruangkelas/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans store change events out to every connected websocket.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now
			},
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

type eventMessage struct {
	Collection string `json:"collection"`
	Op         string `json:"op"`
}

// Broadcast sends the event to every open connection; connections that fail
// to take the write are dropped.
func (h *Hub) Broadcast(ev store.ChangeEvent) {
	msg := eventMessage{Collection: string(ev.Collection), Op: string(ev.Op)}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// HandleWebSocket upgrades the request and keeps the connection registered
// until the client goes away. Clients never send anything meaningful; the
// read loop exists to notice the close.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// ConnCount reports the number of open connections.
func (h *Hub) ConnCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
