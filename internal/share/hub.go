package share

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// viewer is one websocket client. Only its writer goroutine touches conn for
// writing; send holds at most one pending frame.
type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected viewers and the latest frame. Publish never waits on
// the network: a viewer that falls behind only ever sees the newest frame.
type Hub struct {
	mu      sync.Mutex
	viewers map[*websocket.Conn]*viewer
	latest  []byte
}

func NewHub() *Hub {
	return &Hub{viewers: make(map[*websocket.Conn]*viewer)}
}

// Add registers conn, queues the latest frame for it and starts its writer.
func (h *Hub) Add(conn *websocket.Conn) {
	v := &viewer{conn: conn, send: make(chan []byte, 1)}
	h.mu.Lock()
	h.viewers[conn] = v
	if h.latest != nil {
		v.queue(h.latest)
	}
	n := len(h.viewers)
	h.mu.Unlock()

	go v.writeLoop()
	log.Printf("[SHARE] Viewer connected from %s (%d watching)", conn.RemoteAddr(), n)
}

// Remove unregisters conn and stops its writer.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.viewers[conn]; ok {
		delete(h.viewers, conn)
		close(v.send)
		log.Printf("[SHARE] Viewer %s left", conn.RemoteAddr())
	}
}

// Publish stores frame as the latest and queues it for every viewer.
func (h *Hub) Publish(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = frame
	for _, v := range h.viewers {
		v.queue(frame)
	}
}

// Latest returns the most recently published frame, or nil.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// CloseAll disconnects every viewer.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, v := range h.viewers {
		delete(h.viewers, conn)
		close(v.send)
		conn.Close()
	}
}

func (h *Hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// queue replaces any pending frame with frame. Callers hold the hub lock, so
// there is a single producer per viewer.
func (v *viewer) queue(frame []byte) {
	select {
	case v.send <- frame:
		return
	default:
	}
	select {
	case <-v.send:
	default:
	}
	select {
	case v.send <- frame:
	default:
	}
}

func (v *viewer) writeLoop() {
	for frame := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Printf("[SHARE] Error sending to %s: %v", v.conn.RemoteAddr(), err)
			// Closing unblocks the read loop, which removes the viewer.
			v.conn.Close()
			for range v.send {
			}
			return
		}
	}
}
