package engine

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/elenamoglan/collision-quest/internal/core/narrowphase"
)

// Config is the immutable configuration bundle for a detection query.
type Config struct {
	// CollisionThreshold is the separation below which the feature-based
	// detectors report soft contact. Defaults to 0.1 units.
	CollisionThreshold float64 `json:"collision_threshold" yaml:"collision_threshold"`
	// Epsilon is the degeneracy tolerance for near-zero-length edges and
	// directions.
	Epsilon float64 `json:"epsilon" yaml:"epsilon"`
	// MaxIterations caps GJK simplex growth.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
	// UseBroadPhase toggles AABB pair pruning before the narrow phase.
	UseBroadPhase bool `json:"use_broad_phase" yaml:"use_broad_phase"`
}

// DefaultConfig returns the shipped tolerances.
func DefaultConfig() Config {
	return Config{
		CollisionThreshold: 0.1,
		Epsilon:            1e-6,
		MaxIterations:      32,
		UseBroadPhase:      true,
	}
}

// LoadJSON loads config from a JSON reader.
func LoadJSON(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("engine: decode config: %w", err)
	}
	return c, c.Validate()
}

// LoadYAML loads config from a YAML reader.
func LoadYAML(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("engine: decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate rejects tolerances the detectors cannot work with.
func (c Config) Validate() error {
	if c.CollisionThreshold < 0 {
		return fmt.Errorf("engine: collision threshold must not be negative, got %v", c.CollisionThreshold)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("engine: epsilon must be positive, got %v", c.Epsilon)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("engine: max iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

func (c Config) narrow() narrowphase.Config {
	return narrowphase.Config{
		CollisionThreshold: c.CollisionThreshold,
		Epsilon:            c.Epsilon,
		MaxIterations:      c.MaxIterations,
	}
}
