package engine

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/pathfx/components"
)

// Emitter spawns particles at a steady rate from the path origin.
type Emitter struct {
	Rate         float64 // particles per second
	MaxParticles int
	Lifetime     float64 // seconds, unless the follower overrides it
	Spread       float64 // spawn jitter radius around the origin

	origin      r3.Vec
	useOrigin   bool
	accumulator float64
}

// updateEmission spawns the particles owed for this tick.
func (e *Engine) updateEmission(dt float64) {
	if e.emitter.Rate <= 0 {
		return
	}
	e.emitter.accumulator += e.emitter.Rate * dt
	for e.emitter.accumulator >= 1 {
		e.emitter.accumulator--
		if e.emitter.MaxParticles > 0 && e.aliveCount >= e.emitter.MaxParticles {
			continue
		}
		e.spawnParticle()
	}
}

func (e *Engine) spawnParticle() {
	lifetime := e.emitter.Lifetime
	// When lifetime syncing is on, a full traversal of the path takes
	// pathLength/speed seconds, so every particle dies at the path end.
	if derived, ok := e.follower.TargetLifetime(); ok {
		lifetime = derived
	}
	if lifetime <= 0 {
		lifetime = 1
	}

	jitter := func() float64 { return (e.rng.Float64()*2 - 1) * e.emitter.Spread }
	pos := components.Position{Vec: r3.Add(e.emitter.origin, r3.Vec{X: jitter(), Y: jitter(), Z: jitter()})}
	vel := components.Velocity{Vec: r3.Vec{
		X: e.rng.Float64()*2 - 1,
		Y: e.rng.Float64()*2 - 1,
		Z: e.rng.Float64()*2 - 1,
	}}
	life := components.Lifetime{Remaining: lifetime, Start: lifetime}
	meta := components.Meta{ID: e.nextID}
	e.nextID++

	e.mapper.NewEntity(&pos, &vel, &life, &meta)
	e.aliveCount++
}
