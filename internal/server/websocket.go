package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/elenamoglan/collision-quest/internal/core/engine"
	"github.com/elenamoglan/collision-quest/internal/core/geometry"
	"github.com/elenamoglan/collision-quest/internal/core/narrowphase"
	"github.com/elenamoglan/collision-quest/internal/core/observability/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ShapeState is the wire form of a posed polygon.
type ShapeState struct {
	ID       string             `json:"id,omitempty"`
	Vertices []geometry.Vector2 `json:"vertices"`
	Position geometry.Vector2   `json:"position"`
	Rotation float64            `json:"rotation"`
}

// QueryRequest carries one shape-state update from the UI.
type QueryRequest struct {
	Algorithm string         `json:"algorithm"`
	Shapes    []ShapeState   `json:"shapes"`
	Config    *engine.Config `json:"config,omitempty"`
	Parallel  bool           `json:"parallel,omitempty"`
}

// QueryResponse is the per-update reply.
type QueryResponse struct {
	Result *engine.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", log.Err(err))
		return
	}
	defer func() { _ = conn.Close() }()

	session := s.log.With(log.String("remote", conn.RemoteAddr().String()))
	session.Info("inspection session opened")

	for {
		var req QueryRequest
		if err := conn.ReadJSON(&req); err != nil {
			session.Info("inspection session closed", log.Err(err))
			return
		}

		resp := s.runQuery(req)
		if err := conn.WriteJSON(resp); err != nil {
			session.Warn("write failed", log.Err(err))
			return
		}
	}
}

func (s *Server) runQuery(req QueryRequest) QueryResponse {
	cfg := engine.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}

	shapes := make([]*geometry.Polygon, 0, len(req.Shapes))
	for _, state := range req.Shapes {
		shape := geometry.NewPolygon(state.Vertices, state.Position, state.Rotation)
		if state.ID != "" {
			shape.ID = state.ID
		}
		shapes = append(shapes, shape)
	}

	detect := s.engine.Detect
	if req.Parallel {
		detect = s.engine.DetectParallel
	}
	result, err := detect(shapes, narrowphase.Algorithm(req.Algorithm), cfg)
	if err != nil {
		return QueryResponse{Error: err.Error()}
	}
	return QueryResponse{Result: &result}
}
