// Package engine is the collision facade: broad phase to prune pairs, the
// selected narrow-phase detector per surviving pair, one aggregated result
// per query. Queries are synchronous and share no state, so every call
// recomputes world vertices, AABBs and pair lists from its inputs.
package engine

import (
	"fmt"

	"github.com/elenamoglan/collision-quest/internal/core/broadphase"
	"github.com/elenamoglan/collision-quest/internal/core/geometry"
	"github.com/elenamoglan/collision-quest/internal/core/narrowphase"
	"github.com/elenamoglan/collision-quest/internal/core/observability/log"
	"github.com/elenamoglan/collision-quest/pkg/concurrent"
	"github.com/elenamoglan/collision-quest/pkg/sequence"
)

type Engine struct {
	log       log.Log
	detectors map[narrowphase.Algorithm]narrowphase.Detector
}

func New(logger log.Log) *Engine {
	if logger == nil {
		logger = log.NewNop()
	}
	detectors := make(map[narrowphase.Algorithm]narrowphase.Detector, len(narrowphase.Algorithms()))
	for _, alg := range narrowphase.Algorithms() {
		d, err := narrowphase.New(alg)
		if err != nil {
			panic(err)
		}
		detectors[alg] = d
	}
	return &Engine{
		log:       logger,
		detectors: detectors,
	}
}

// Detect runs one query over the shape set with the selected algorithm.
// The aggregate verdict is true if any candidate pair collides; the contact
// point is taken from the most recent colliding pair (last write wins, an
// accepted simplification since the primary scenario has exactly two
// shapes).
func (e *Engine) Detect(shapes []*geometry.Polygon, alg narrowphase.Algorithm, cfg Config) (Result, error) {
	detector, pairs, res, err := e.prepare(shapes, alg, cfg)
	if err != nil || len(pairs) == 0 {
		return res, err
	}

	for _, pair := range pairs {
		sub := detector.Detect(pair.A, pair.B, cfg.narrow())
		aggregate(&res, pair, sub)
	}

	e.log.Debug("detection query finished",
		log.String("algorithm", string(alg)),
		log.Int("pairs", len(pairs)),
		log.Bool("colliding", res.Colliding),
	)
	return res, nil
}

// DetectParallel fans the candidate pairs out across goroutines. Pairs share
// no mutable state, so only the final aggregation needs to be serialized;
// it runs in pair order after all detectors finish, keeping the trace and
// contact-point semantics identical to Detect.
func (e *Engine) DetectParallel(shapes []*geometry.Polygon, alg narrowphase.Algorithm, cfg Config) (Result, error) {
	detector, pairs, res, err := e.prepare(shapes, alg, cfg)
	if err != nil || len(pairs) == 0 {
		return res, err
	}

	subResults := make([]narrowphase.Result, len(pairs))
	indices := make([]int, len(pairs))
	for i := range pairs {
		indices[i] = i
	}
	_ = concurrent.Concurrent(sequence.From(indices), func(i int) error {
		subResults[i] = detector.Detect(pairs[i].A, pairs[i].B, cfg.narrow())
		return nil
	})

	for i, pair := range pairs {
		aggregate(&res, pair, subResults[i])
	}

	e.log.Debug("parallel detection query finished",
		log.String("algorithm", string(alg)),
		log.Int("pairs", len(pairs)),
		log.Bool("colliding", res.Colliding),
	)
	return res, nil
}

// prepare validates the query and computes the candidate pairs. When the
// broad phase rejects everything the returned pair list is empty and the
// result already carries the short-circuit trace.
func (e *Engine) prepare(shapes []*geometry.Polygon, alg narrowphase.Algorithm, cfg Config) (narrowphase.Detector, []broadphase.Pair, Result, error) {
	var res Result

	if err := cfg.Validate(); err != nil {
		return nil, nil, res, err
	}
	detector, ok := e.detectors[alg]
	if !ok {
		return nil, nil, res, fmt.Errorf("engine: unknown algorithm %q", alg)
	}

	var pairs []broadphase.Pair
	if cfg.UseBroadPhase {
		sap := broadphase.NewSweepAndPrune()
		for _, shape := range shapes {
			sap.Insert(shape)
		}
		pairs = sap.Pairs()
		res.Debug = append(res.Debug, fmt.Sprintf("Broad phase: %d candidate pair(s) from %d shape(s)", len(pairs), len(shapes)))
	} else {
		pairs = allPairs(shapes)
	}

	if len(pairs) == 0 {
		res.Debug = append(res.Debug, "Broad phase: no potential collisions")
	}
	return detector, pairs, res, nil
}

func allPairs(shapes []*geometry.Polygon) []broadphase.Pair {
	var pairs []broadphase.Pair
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			pairs = append(pairs, broadphase.Pair{A: shapes[i], B: shapes[j]})
		}
	}
	return pairs
}

func aggregate(res *Result, pair broadphase.Pair, sub narrowphase.Result) {
	res.Debug = append(res.Debug, fmt.Sprintf("Pair %s / %s:", pair.A.ID, pair.B.ID))
	res.Debug = append(res.Debug, sub.Debug...)
	if sub.Colliding {
		res.Colliding = true
		if sub.CollisionPoint != nil {
			p := *sub.CollisionPoint
			res.CollisionPoint = &p
		}
	}
}
