package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
	"github.com/elenamoglan/collision-quest/internal/core/narrowphase"
	"github.com/elenamoglan/collision-quest/internal/core/observability/log"
)

func square(cx, cy, half float64) *geometry.Polygon {
	return geometry.NewPolygon([]geometry.Vector2{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}, geometry.NewVector2(cx, cy), 0)
}

func newTestEngine() *Engine {
	return New(log.NewNop())
}

func TestEngine_DetectOverlap(t *testing.T) {
	e := newTestEngine()
	shapes := []*geometry.Polygon{square(0, 0, 0.5), square(0.5, 0, 0.5)}

	for _, alg := range narrowphase.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			res, err := e.Detect(shapes, alg, DefaultConfig())
			require.NoError(t, err)
			require.True(t, res.Colliding)
			require.NotNil(t, res.CollisionPoint)
		})
	}
}

func TestEngine_DetectSeparated(t *testing.T) {
	e := newTestEngine()
	shapes := []*geometry.Polygon{square(0, 0, 0.5), square(3, 0, 0.5)}

	for _, alg := range narrowphase.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			res, err := e.Detect(shapes, alg, DefaultConfig())
			require.NoError(t, err)
			require.False(t, res.Colliding)
		})
	}
}

func TestEngine_BroadPhaseShortCircuit(t *testing.T) {
	e := newTestEngine()
	shapes := []*geometry.Polygon{square(0, 0, 0.5), square(100, 100, 0.5)}

	res, err := e.Detect(shapes, narrowphase.AlgorithmGJK, DefaultConfig())
	require.NoError(t, err)
	require.False(t, res.Colliding)
	require.Contains(t, strings.Join(res.Debug, "\n"), "no potential collisions")
	// No narrow-phase trace lines after the short circuit.
	require.NotContains(t, strings.Join(res.Debug, "\n"), "GJK")
}

func TestEngine_BroadPhaseDisabled(t *testing.T) {
	e := newTestEngine()
	shapes := []*geometry.Polygon{square(0, 0, 0.5), square(100, 100, 0.5)}

	cfg := DefaultConfig()
	cfg.UseBroadPhase = false
	res, err := e.Detect(shapes, narrowphase.AlgorithmGJK, cfg)
	require.NoError(t, err)
	require.False(t, res.Colliding)
	// Without pruning the pair reaches the narrow phase.
	require.Contains(t, strings.Join(res.Debug, "\n"), "GJK")
}

func TestEngine_UnknownAlgorithm(t *testing.T) {
	e := newTestEngine()
	_, err := e.Detect([]*geometry.Polygon{square(0, 0, 0.5)}, "minkowski-portal", DefaultConfig())
	require.Error(t, err)
}

func TestEngine_InvalidConfig(t *testing.T) {
	e := newTestEngine()
	cfg := DefaultConfig()
	cfg.Epsilon = 0
	_, err := e.Detect([]*geometry.Polygon{square(0, 0, 0.5)}, narrowphase.AlgorithmSAT, cfg)
	require.Error(t, err)
}

func TestEngine_MultiplePairsAggregate(t *testing.T) {
	e := newTestEngine()
	// Three mutually overlapping squares: any colliding pair flips the
	// aggregate verdict, the last colliding pair wins the contact point.
	shapes := []*geometry.Polygon{
		square(0, 0, 0.5),
		square(0.4, 0, 0.5),
		square(0.8, 0, 0.5),
	}

	res, err := e.Detect(shapes, narrowphase.AlgorithmSAT, DefaultConfig())
	require.NoError(t, err)
	require.True(t, res.Colliding)
	require.NotNil(t, res.CollisionPoint)
}

func TestEngine_ParallelMatchesSerial(t *testing.T) {
	e := newTestEngine()
	shapes := []*geometry.Polygon{
		square(0, 0, 0.5),
		square(0.4, 0, 0.5),
		square(0.8, 0, 0.5),
		square(5, 5, 0.5),
	}

	for _, alg := range narrowphase.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			serial, err := e.Detect(shapes, alg, DefaultConfig())
			require.NoError(t, err)
			parallel, err := e.DetectParallel(shapes, alg, DefaultConfig())
			require.NoError(t, err)

			require.Equal(t, serial.Colliding, parallel.Colliding)
			require.Equal(t, serial.Debug, parallel.Debug, "aggregation order is deterministic")
			require.Equal(t, serial.CollisionPoint, parallel.CollisionPoint)
		})
	}
}

func TestEngine_NoShapes(t *testing.T) {
	e := newTestEngine()
	res, err := e.Detect(nil, narrowphase.AlgorithmGJK, DefaultConfig())
	require.NoError(t, err)
	require.False(t, res.Colliding)
	require.Nil(t, res.CollisionPoint)
}
