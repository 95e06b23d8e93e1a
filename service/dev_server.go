package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

// RenderFunc produces the dev server's current preview content — typically
// the css/scss/tailwind emission of the corpus most recently loaded by a
// Watcher, recomputed on every request so edits show up without a restart.
type RenderFunc func() (string, error)

// DevServer serves a live-reloading preview of a corpus's rendered
// stylesheet over HTTP, grounded on tomtom215-cartographus's chi-router
// setup (internal/api/chi_router.go) and websocket upgrade/hub pattern
// (internal/api/handlers.go, internal/websocket/hub.go), repurposed here
// for a single preview route instead of a full REST API.
type DevServer struct {
	addr     string
	render   RenderFunc
	hub      *wsHub
	upgrader websocket.Upgrader
}

// NewDevServer constructs a DevServer that serves render's output at addr.
func NewDevServer(addr string, render RenderFunc) *DevServer {
	return &DevServer{
		addr:   addr,
		render: render,
		hub:    newWSHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin:      func(r *http.Request) bool { return true },
		},
	}
}

// Reload notifies every connected browser to refresh, called by the CLI's
// watch loop after each successful re-analysis.
func (s *DevServer) Reload() {
	s.hub.broadcast([]byte("reload"))
}

// ClientCount reports how many browsers currently hold the preview open.
func (s *DevServer) ClientCount() int {
	return s.hub.clientCount()
}

// router builds the server's chi mux: "/" serves the rendered preview page,
// "/ws" is the live-reload signaling channel.
func (s *DevServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/", s.handlePreview)
	r.Get("/ws", s.handleWebSocket)
	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *DevServer) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router()}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *DevServer) handlePreview(w http.ResponseWriter, r *http.Request) {
	rendered, err := s.render()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, previewPageTemplate, rendered)
}

func (s *DevServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	send := s.hub.register(conn)
	defer s.hub.unregister(conn)

	for payload := range send {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

const previewPageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>stylescan preview</title>
</head>
<body>
<pre id="stylesheet">%s</pre>
<script>
(function() {
  var ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = function() { location.reload(); };
})();
</script>
</body>
</html>
`
