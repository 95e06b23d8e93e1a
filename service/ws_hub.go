package service

import (
	"sync"

	"github.com/gorilla/websocket"
)

// wsHub tracks the dev server's connected live-reload clients and
// broadcasts reload notifications to all of them, grounded on
// tomtom215-cartographus's internal/websocket.Hub (register/unregister
// channels guarding a client set, broadcast fanned out to every client's
// own send channel).
type wsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

func newWSHub() *wsHub {
	return &wsHub{clients: make(map[*websocket.Conn]chan []byte)}
}

// register adds conn to the hub and returns the channel its writer pump
// should drain.
func (h *wsHub) register(conn *websocket.Conn) chan []byte {
	send := make(chan []byte, 8)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()
	return send
}

// unregister removes conn and closes its send channel.
func (h *wsHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if send, ok := h.clients[conn]; ok {
		close(send)
		delete(h.clients, conn)
	}
}

// broadcast pushes payload to every connected client, dropping it for any
// client whose send buffer is full rather than blocking the caller.
func (h *wsHub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, send := range h.clients {
		select {
		case send <- payload:
		default:
		}
	}
}

// clientCount reports how many clients are currently connected.
func (h *wsHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
