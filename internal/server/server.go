// Package server is the integration surface for UI callers: shape poses come
// in over a websocket, the engine runs one synchronous query per update, and
// the verdict goes back as JSON. Polygon presets are served here because
// they are caller-side data, not engine responsibility.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/elenamoglan/collision-quest/internal/core/engine"
	"github.com/elenamoglan/collision-quest/internal/core/observability/log"
)

type Server struct {
	log    log.Log
	engine *engine.Engine
	server *http.Server
}

func New(addr string, logger log.Log, eng *engine.Engine) *Server {
	if logger == nil {
		logger = log.NewNop()
	}
	s := &Server{
		log:    logger,
		engine: eng,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/presets", s.handlePresets)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start(_ context.Context) error {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http server stopped", log.Err(err))
		}
	}()
	s.log.Info("inspection server listening", log.String("addr", s.server.Addr))
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
