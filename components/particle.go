// Package components defines the ECS components of the demo particle
// host simulation.
package components

import "gonum.org/v1/gonum/spatial/r3"

// Position is a particle's world position. The follow pass writes this
// after integration, overriding whatever the host computed.
type Position struct {
	Vec r3.Vec
}

// Velocity is the host's own integrated motion, kept so the simulation
// remains meaningful when path following is stopped.
type Velocity struct {
	Vec r3.Vec
}

// Lifetime tracks a particle's remaining and starting lifetime in
// seconds. Remaining counts down to zero, at which point the particle
// is removed.
type Lifetime struct {
	Remaining float64
	Start     float64
}

// Meta carries the per-particle identity used by the scatter keying.
type Meta struct {
	ID uint32
}
