// Package share serves a read-only live view of the board on the local
// network. Viewers can watch but never draw.
package share

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/mdns"
)

// Server publishes the latest PNG of the board over HTTP and websocket.
type Server struct {
	ID   string
	Port int

	hub      *Hub
	upgrader websocket.Upgrader

	http *http.Server
	mdns *mdns.Server
}

func NewServer(port int) *Server {
	return &Server{
		ID:   uuid.NewString(),
		Port: port,
		hub:  NewHub(),
		upgrader: websocket.Upgrader{
			// Viewers are opened from arbitrary LAN pages.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler routes "/", "/drawing.png" and "/live".
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/drawing.png", s.handleImage)
	mux.HandleFunc("/live", s.handleLive)
	return mux
}

// Start listens on Port and, when announce is set, announces the board over mDNS.
func (s *Server) Start(announce bool) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.Port, err)
	}
	s.http = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[SHARE] Server stopped: %v", err)
		}
	}()
	log.Printf("[SHARE] Live view listening on port %d", s.Port)

	if announce {
		instance := "sketchboard-" + s.ID[:8]
		s.mdns, err = advertise(instance, s.Port, []string{"id=" + s.ID})
		if err != nil {
			log.Printf("[SHARE] Advertising failed, continuing without mDNS: %v", err)
		}
	}
	return nil
}

// Publish stores frame as the current image and queues it for viewers. It
// does not wait for any viewer to receive it.
func (s *Server) Publish(frame []byte) {
	s.hub.Publish(frame)
}

// Close stops advertising, disconnects viewers and shuts the listener down.
func (s *Server) Close(ctx context.Context) error {
	if s.mdns != nil {
		if err := s.mdns.Shutdown(); err != nil {
			log.Printf("[SHARE] mDNS shutdown: %v", err)
		}
	}
	s.hub.CloseAll()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	frame := s.hub.Latest()
	if frame == nil {
		http.Error(w, "nothing drawn yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(frame)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] Upgrade failed: %v", err)
		return
	}
	s.hub.Add(conn)
	defer func() {
		s.hub.Remove(conn)
		conn.Close()
	}()
	// Viewers never send anything meaningful; reading detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

const indexHTML = `<!doctype html>
<html><head><title>SketchBoard</title></head>
<body style="margin:0;background:#ddd">
<img id="board" src="/drawing.png" style="display:block;margin:auto;background:#fff">
<script>
const img = document.getElementById("board");
const ws = new WebSocket("ws://" + location.host + "/live");
ws.binaryType = "blob";
ws.onmessage = (e) => {
  const old = img.src;
  img.src = URL.createObjectURL(e.data);
  if (old.startsWith("blob:")) URL.revokeObjectURL(old);
};
</script>
</body></html>`
