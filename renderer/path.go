// Package renderer paints sampled paths and particles with raylib.
// These are thin adapters over the sampling core; they hold no
// algorithmic state of their own.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/pathfx/paths"
)

// PathRenderer draws the curve a sampler produces as a polyline.
type PathRenderer struct {
	Samples int
	Color   rl.Color
}

// NewPathRenderer creates a polyline renderer with the given sample
// resolution.
func NewPathRenderer(samples int) *PathRenderer {
	if samples < 2 {
		samples = 64
	}
	return &PathRenderer{Samples: samples, Color: rl.SkyBlue}
}

// Draw samples the path at fixed parameter steps and draws connecting
// line segments. Must be called inside a 3D drawing block.
func (r *PathRenderer) Draw(s paths.Sampler, points []r3.Vec) {
	if len(points) < 2 {
		return
	}
	prev := toRL(s.CalculatePointOnPath(points, 0))
	for i := 1; i <= r.Samples; i++ {
		t := float64(i) / float64(r.Samples)
		cur := toRL(s.CalculatePointOnPath(points, t))
		rl.DrawLine3D(prev, cur, r.Color)
		prev = cur
	}
}

// DrawControlPoints marks the control points themselves.
func (r *PathRenderer) DrawControlPoints(points []r3.Vec) {
	for _, p := range points {
		rl.DrawSphere(toRL(p), 0.06, rl.Gold)
	}
}

func toRL(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
