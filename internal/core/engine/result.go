package engine

import "github.com/elenamoglan/collision-quest/internal/core/geometry"

// Result is the aggregated outcome of one detection query. Debug is the
// concatenation of the per-pair traces in pair-processing order; it is
// diagnostic output only and never drives control flow.
type Result struct {
	Colliding      bool              `json:"colliding" yaml:"colliding"`
	Debug          []string          `json:"debug,omitempty" yaml:"debug,omitempty"`
	CollisionPoint *geometry.Vector2 `json:"collision_point,omitempty" yaml:"collision_point,omitempty"`
}
