package server

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/elenamoglan/collision-quest/internal/core/geometry"
	"github.com/elenamoglan/collision-quest/internal/core/observability/log"
)

// Presets returns the fixed vertex sets the UI offers. The star is not
// convex; it exists for the UI to draw, and callers feeding it to the engine
// are on their own per the convexity invariant.
func Presets() map[string][]geometry.Vector2 {
	return map[string][]geometry.Vector2{
		"square": {
			{X: -0.5, Y: -0.5},
			{X: 0.5, Y: -0.5},
			{X: 0.5, Y: 0.5},
			{X: -0.5, Y: 0.5},
		},
		"triangle": {
			{X: 0, Y: 0.5},
			{X: -0.5, Y: -0.5},
			{X: 0.5, Y: -0.5},
		},
		"pentagon": regularPolygon(5, 0.5),
		"star":     starPolygon(5, 0.5, 0.2),
	}
}

func regularPolygon(sides int, radius float64) []geometry.Vector2 {
	out := make([]geometry.Vector2, sides)
	for i := 0; i < sides; i++ {
		angle := math.Pi/2 + 2*math.Pi*float64(i)/float64(sides)
		sin, cos := math.Sincos(angle)
		out[i] = geometry.Vector2{X: radius * cos, Y: radius * sin}
	}
	return out
}

func starPolygon(points int, outer, inner float64) []geometry.Vector2 {
	out := make([]geometry.Vector2, 0, points*2)
	for i := 0; i < points*2; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := math.Pi/2 + math.Pi*float64(i)/float64(points)
		sin, cos := math.Sincos(angle)
		out = append(out, geometry.Vector2{X: radius * cos, Y: radius * sin})
	}
	return out
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Presets()); err != nil {
		s.log.Warn("encode presets", log.Err(err))
	}
}
