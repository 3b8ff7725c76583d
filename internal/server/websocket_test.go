package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/elenamoglan/collision-quest/internal/core/engine"
	"github.com/elenamoglan/collision-quest/internal/core/geometry"
	"github.com/elenamoglan/collision-quest/internal/core/observability/log"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewNop()
	s := New(":0", logger, engine.New(logger))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func squareState(id string, cx, cy float64) ShapeState {
	return ShapeState{
		ID: id,
		Vertices: []geometry.Vector2{
			{X: -0.5, Y: -0.5},
			{X: 0.5, Y: -0.5},
			{X: 0.5, Y: 0.5},
			{X: -0.5, Y: 0.5},
		},
		Position: geometry.NewVector2(cx, cy),
	}
}

func TestWebSocket_QueryRoundTrip(t *testing.T) {
	conn := dial(t, newTestServer(t))

	req := QueryRequest{
		Algorithm: "gjk",
		Shapes:    []ShapeState{squareState("a", 0, 0), squareState("b", 0.5, 0)},
	}
	require.NoError(t, conn.WriteJSON(req))

	var resp QueryResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Empty(t, resp.Error)
	require.NotNil(t, resp.Result)
	require.True(t, resp.Result.Colliding)
	require.NotNil(t, resp.Result.CollisionPoint)
}

func TestWebSocket_SeparatedShapes(t *testing.T) {
	conn := dial(t, newTestServer(t))

	req := QueryRequest{
		Algorithm: "sat",
		Shapes:    []ShapeState{squareState("a", 0, 0), squareState("b", 3, 0)},
		Parallel:  true,
	}
	require.NoError(t, conn.WriteJSON(req))

	var resp QueryResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Empty(t, resp.Error)
	require.False(t, resp.Result.Colliding)
}

func TestWebSocket_UnknownAlgorithm(t *testing.T) {
	conn := dial(t, newTestServer(t))

	req := QueryRequest{
		Algorithm: "quadtree",
		Shapes:    []ShapeState{squareState("a", 0, 0), squareState("b", 0.5, 0)},
	}
	require.NoError(t, conn.WriteJSON(req))

	var resp QueryResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.NotEmpty(t, resp.Error)
	require.Nil(t, resp.Result)
}

func TestPresetsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/presets")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var presets map[string][]geometry.Vector2
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&presets))
	for _, name := range []string{"square", "triangle", "pentagon", "star"} {
		require.Contains(t, presets, name)
		require.GreaterOrEqual(t, len(presets[name]), 3)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
