// Package follow drives per-particle positions along a sampled path.
// Each tick, after the host simulation has integrated its own motion,
// the follower maps every live particle's normalized age to a path
// sample, optionally layers scatter noise on top, and writes the result
// back — unconditionally overriding the host's position.
package follow

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/pathfx/paths"
)

// State tracks whether the follower is overriding positions.
type State uint8

const (
	Idle State = iota
	Active
)

// Particle is the follower's view of one host particle. Position points
// into host storage and is written in place; Remaining and Start are
// the host's lifetime values; Index is the particle's stable index
// within the current frame's live set.
type Particle struct {
	Position  *r3.Vec
	Remaining float64
	Start     float64
	Index     int
}

// ScatterConfig layers per-axis pseudo-noise on top of the path sample.
// When disabled, scatter is left to an external noise field.
type ScatterConfig struct {
	Enabled   bool
	Amplitude paths.NoiseAmplitude
	Frequency float64
	CurveX    paths.Curve
	CurveY    paths.Curve
	CurveZ    paths.Curve
}

// Config controls playback and scatter.
type Config struct {
	// Speed, with SyncLifetime, derives the particle lifetime a full
	// traversal should take: pathLength / Speed ± LifetimeVariation.
	Speed             float64
	SyncLifetime      bool
	LifetimeVariation float64
	// MoveEmitterToStart reports the path's first point as the emitter
	// origin when playback begins.
	MoveEmitterToStart bool
	Range              paths.RangeRemapper
	Scatter            ScatterConfig
	Seed               int64
}

// Follower owns the Idle/Active state machine and the per-frame
// override pass. It owns its particle scratch buffer exclusively;
// the buffer is resized, never shared.
type Follower struct {
	cfg     Config
	sampler paths.Sampler
	state   State
	points  []r3.Vec
	scratch []Particle

	scatterNoise *paths.Perlin
	rng          *rand.Rand

	targetLifetime float64
	haveLifetime   bool
}

// Scatter noise streams per axis, mirroring the path-local axis order.
const (
	scatterStreamX = 11.3
	scatterStreamY = 47.9
	scatterStreamZ = 83.1
)

// New creates an idle follower for the given sampler.
func New(sampler paths.Sampler, cfg Config) *Follower {
	if cfg.Range == (paths.RangeRemapper{}) {
		cfg.Range = paths.FullRange
	}
	return &Follower{
		cfg:          cfg,
		sampler:      sampler,
		scatterNoise: paths.NewPerlin(cfg.Seed),
		rng:          rand.New(rand.NewSource(cfg.Seed)),
	}
}

// State returns the current playback state.
func (f *Follower) State() State { return f.state }

// Active reports whether the override pass should run this tick.
func (f *Follower) Active() bool { return f.state == Active }

// SetSeed re-derives the scatter generators.
func (f *Follower) SetSeed(seed int64) {
	f.cfg.Seed = seed
	f.scatterNoise = paths.NewPerlin(seed)
	f.rng = rand.New(rand.NewSource(seed))
	if s, ok := f.sampler.(paths.Seedable); ok {
		s.SetSeed(seed)
	}
}

// OnPathChanged stores the new point list and forwards it to the
// sampler so cached per-segment data can be rebuilt.
func (f *Follower) OnPathChanged(points []r3.Vec) {
	f.points = points
	if a, ok := f.sampler.(paths.Animated); ok {
		a.OnPathChanged(points)
	}
	if f.cfg.SyncLifetime {
		f.deriveLifetime()
	}
}

// Advance forwards the tick to an animated sampler. Must run before
// Apply each tick so regeneration timers reflect the current frame.
func (f *Follower) Advance(dt float64) {
	if a, ok := f.sampler.(paths.Animated); ok {
		a.Advance(dt)
	}
}

// Play transitions Idle to Active. Idempotent; calling it while already
// active re-derives nothing.
func (f *Follower) Play() {
	if f.state == Active {
		return
	}
	f.state = Active
	if f.cfg.SyncLifetime {
		f.deriveLifetime()
	}
}

// Stop transitions back to Idle. The override pass simply stops being
// invoked; nothing asynchronous needs cancelling.
func (f *Follower) Stop() {
	f.state = Idle
}

// EmitterOrigin returns the path's first point when the follower is
// configured to place the emitter there, and reports whether it did.
func (f *Follower) EmitterOrigin() (r3.Vec, bool) {
	if !f.cfg.MoveEmitterToStart || len(f.points) == 0 {
		return r3.Vec{}, false
	}
	return f.points[0], true
}

// TargetLifetime returns the derived particle lifetime for a full path
// traversal, if lifetime syncing is enabled and a path is set.
func (f *Follower) TargetLifetime() (float64, bool) {
	return f.targetLifetime, f.haveLifetime
}

func (f *Follower) deriveLifetime() {
	if f.cfg.Speed <= 0 || len(f.points) < 2 {
		f.haveLifetime = false
		return
	}
	base := paths.PathLength(f.points) / f.cfg.Speed
	variation := f.cfg.LifetimeVariation * (f.rng.Float64()*2 - 1)
	f.targetLifetime = math.Max(base+variation, 1e-3)
	f.haveLifetime = true
}

// Buffer returns the reusable scratch slice resized to n entries.
func (f *Follower) Buffer(n int) []Particle {
	if cap(f.scratch) < n {
		f.scratch = make([]Particle, n)
	}
	f.scratch = f.scratch[:n]
	return f.scratch
}

// Apply runs the override pass over the given live particles. A
// particle at full remaining lifetime samples the path start; one at
// zero remaining lifetime samples the path end.
func (f *Follower) Apply(particles []Particle) {
	if f.state != Active || len(f.points) < 2 {
		return
	}
	for i := range particles {
		p := &particles[i]
		if p.Position == nil || p.Start <= 0 {
			continue
		}
		age := 1 - p.Remaining/p.Start
		pos := f.sampler.CalculatePointOnPath(f.points, f.cfg.Range.Remap(age))
		if f.cfg.Scatter.Enabled {
			pos = r3.Add(pos, f.scatter(age, p.Index))
		}
		*p.Position = pos
	}
}

// scatter computes an independent per-axis displacement keyed by the
// particle's age, its index, a per-axis stream offset and the seed, so
// neighboring particles spread instead of tracing one identical line.
func (f *Follower) scatter(age float64, index int) r3.Vec {
	freq := f.cfg.Scatter.Frequency
	if freq <= 0 {
		freq = 1
	}
	x := age * freq
	idx := float64(index) * 0.913

	amp := f.cfg.Scatter.Amplitude
	return r3.Vec{
		X: f.scatterNoise.Noise3D(x, idx, scatterStreamX) * amp.X * curveAt(f.cfg.Scatter.CurveX, age),
		Y: f.scatterNoise.Noise3D(x, idx, scatterStreamY) * amp.Y * curveAt(f.cfg.Scatter.CurveY, age),
		Z: f.scatterNoise.Noise3D(x, idx, scatterStreamZ) * amp.Z * curveAt(f.cfg.Scatter.CurveZ, age),
	}
}

func curveAt(c paths.Curve, t float64) float64 {
	if c == nil {
		return 1
	}
	return c.Evaluate(t)
}
