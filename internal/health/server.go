package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Body is the fixed liveness response.
const Body = "Telegram Bot is running!"

// Server answers platform health checks. It shares nothing with the bot
// loop beyond the process.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the liveness server bound to all interfaces on the
// given port. Per-request access logging is deliberately suppressed.
func NewServer(port int) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           Router(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router answers any GET on any path with the fixed liveness body.
func Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/*", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(Body))
	})

	return r
}

// ListenAndServe blocks serving health checks until the listener fails
// or the server is shut down.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting new health checks.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
