// Package engine owns the demo host simulation and the orchestration of
// the path-effect core: it supplies the point list, advances animated
// samplers, integrates particle motion, and runs the follow override
// pass after integration so its writes are the ones observed at render
// time.
package engine

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/pathfx/components"
	"github.com/pthm-cable/pathfx/config"
	"github.com/pthm-cable/pathfx/follow"
	"github.com/pthm-cable/pathfx/paths"
	"github.com/pthm-cable/pathfx/telemetry"
)

// Engine holds the particle world and the follow-path effect driving it.
type Engine struct {
	world *ecs.World
	rng   *rand.Rand

	mapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Lifetime,
		components.Meta,
	]
	filter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Lifetime,
		components.Meta,
	]

	sampler  paths.Sampler
	follower *follow.Follower
	points   []r3.Vec

	emitter Emitter
	perf    *telemetry.PerfCollector

	initialized bool
	tick        uint64
	nextID      uint32
	aliveCount  int
}

// Options configures engine construction.
type Options struct {
	Sampler paths.Sampler
	Follow  follow.Config
	Seed    int64
	Perf    *telemetry.PerfCollector
}

// New creates an engine around the given sampler. The engine is not
// usable until Initialize has been called.
func New(opts Options) *Engine {
	return &Engine{
		sampler:  opts.Sampler,
		follower: follow.New(opts.Sampler, opts.Follow),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		perf:     opts.Perf,
	}
}

// Initialize performs one-time world setup. Safe to call repeatedly;
// calls after the first success are no-ops.
func (e *Engine) Initialize() error {
	if e.initialized {
		return nil
	}
	cfg := config.Cfg()

	world := ecs.NewWorld()
	e.world = world
	e.mapper = ecs.NewMap4[
		components.Position,
		components.Velocity,
		components.Lifetime,
		components.Meta,
	](world)
	e.filter = ecs.NewFilter4[
		components.Position,
		components.Velocity,
		components.Lifetime,
		components.Meta,
	](world)

	e.emitter = Emitter{
		Rate:         cfg.Emitter.Rate,
		MaxParticles: cfg.Emitter.MaxParticles,
		Lifetime:     cfg.Emitter.Lifetime,
		Spread:       cfg.Emitter.Spread,
	}

	e.initialized = true
	slog.Info("engine initialized",
		"rate", e.emitter.Rate,
		"max_particles", e.emitter.MaxParticles)
	return nil
}

// Follower exposes the follow-path effect for configuration.
func (e *Engine) Follower() *follow.Follower { return e.follower }

// Sampler returns the active path sampler.
func (e *Engine) Sampler() paths.Sampler { return e.sampler }

// Points returns the current control-point sequence.
func (e *Engine) Points() []r3.Vec { return e.points }

// Alive returns the number of live particles.
func (e *Engine) Alive() int { return e.aliveCount }

// Tick returns the number of completed simulation ticks.
func (e *Engine) Tick() uint64 { return e.tick }

// UpdatePath supplies or replaces the active point sequence and
// notifies the samplers so cached per-segment data can be rebuilt.
func (e *Engine) UpdatePath(points []r3.Vec) {
	e.points = points
	e.follower.OnPathChanged(points)
	if e.emitter.origin, e.emitter.useOrigin = e.follower.EmitterOrigin(); !e.emitter.useOrigin && len(points) > 0 {
		e.emitter.origin = points[0]
	}
}

// Play starts the override pass. Idempotent.
func (e *Engine) Play() { e.follower.Play() }

// Stop halts the override pass. Idempotent; live particles keep their
// host-integrated motion from the next tick on.
func (e *Engine) Stop() { e.follower.Stop() }

// CalculatePointOnPath samples the active path for preview purposes,
// independent of playback state.
func (e *Engine) CalculatePointOnPath(t float64) r3.Vec {
	return e.sampler.CalculatePointOnPath(e.points, t)
}

// Step advances the simulation by dt seconds. Ordering per tick:
// animated samplers advance first, then emission and the host's own
// integration, and the follow override pass runs last.
func (e *Engine) Step(dt float64) {
	if !e.initialized {
		return
	}
	if e.perf != nil {
		e.perf.StartTick()
		e.perf.StartPhase(telemetry.PhaseAdvance)
	}
	e.follower.Advance(dt)

	if e.perf != nil {
		e.perf.StartPhase(telemetry.PhaseEmit)
	}
	e.updateEmission(dt)

	if e.perf != nil {
		e.perf.StartPhase(telemetry.PhaseIntegrate)
	}
	e.integrate(dt)

	if e.perf != nil {
		e.perf.StartPhase(telemetry.PhaseOverride)
	}
	e.applyFollow()

	if e.perf != nil {
		e.perf.EndTick()
	}
	e.tick++
}

// integrate applies the host's own motion and expires dead particles.
func (e *Engine) integrate(dt float64) {
	var dead []ecs.Entity

	query := e.filter.Query()
	alive := 0
	for query.Next() {
		pos, vel, life, _ := query.Get()
		life.Remaining -= dt
		if life.Remaining <= 0 {
			dead = append(dead, query.Entity())
			continue
		}
		pos.Vec = r3.Add(pos.Vec, r3.Scale(dt, vel.Vec))
		alive++
	}
	for _, entity := range dead {
		e.mapper.Remove(entity)
	}
	e.aliveCount = alive
}

// applyFollow collects the live set into the follower's scratch buffer
// and runs the override pass. Runs after integrate, so the positions it
// writes are what the renderer sees.
func (e *Engine) applyFollow() {
	if !e.follower.Active() {
		return
	}
	buf := e.follower.Buffer(e.aliveCount)
	i := 0
	query := e.filter.Query()
	for query.Next() {
		if i >= len(buf) {
			query.Close()
			break
		}
		pos, _, life, _ := query.Get()
		buf[i] = follow.Particle{
			Position:  &pos.Vec,
			Remaining: life.Remaining,
			Start:     life.Start,
			Index:     i,
		}
		i++
	}
	e.follower.Apply(buf[:i])
}
