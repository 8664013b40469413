package paths

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vortex sweeps a helix around the path. The radius is interpolated
// from StartRadius to EndRadius and shaped by RadiusCurve; the rotation
// angle grows with t and with an internal time accumulator so the helix
// keeps spinning while the effect plays. With AdaptRotations set, the
// turn count scales with path-length over chord-length so turns per
// world unit stay roughly constant however the path is bent.
type Vortex struct {
	StartRadius      float64
	EndRadius        float64
	RadiusCurve      Curve
	Rotations        float64
	CounterClockwise bool
	RotationSpeed    float64 // radians per second added by Advance
	AdaptRotations   bool
	PerSegment       bool

	time float64
}

// NewVortex returns a vortex whose radius fades in and out at the path
// endpoints so the helix still passes through the end control points.
func NewVortex(radius, rotations float64) *Vortex {
	return &Vortex{
		StartRadius: radius,
		EndRadius:   radius,
		RadiusCurve: EndpointEnvelope(),
		Rotations:   rotations,
	}
}

// Advance accumulates continuous spin, wrapped to bound float growth.
func (v *Vortex) Advance(dt float64) {
	v.time += dt * v.RotationSpeed
	if v.time > 2*math.Pi*1e3 {
		v.time -= 2 * math.Pi * 1e3
	}
}

// OnPathChanged is a no-op; the vortex holds no per-path cache.
func (v *Vortex) OnPathChanged([]r3.Vec) {}

func (v *Vortex) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("vortex", points) {
		return r3.Vec{}
	}
	base := basePoint(points, t)

	var local float64
	var tangent r3.Vec
	if v.PerSegment {
		_, local = segmentAt(points, t)
		tangent = tangentAt(points, t)
	} else {
		local = clamp01(t)
		tangent = pathTangent(points)
	}

	radius := lerp(v.StartRadius, v.EndRadius, local) *
		ensureCurve(v.RadiusCurve).Evaluate(local)

	rotations := v.Rotations
	if v.AdaptRotations {
		if chord := ChordLength(points); chord > 1e-9 {
			rotations *= PathLength(points) / chord
		}
	}

	angle := local * rotations * 2 * math.Pi
	if v.CounterClockwise {
		angle = -angle - v.time
	} else {
		angle += v.time
	}

	f := frameFor(tangent)
	return r3.Add(base, r3.Add(
		r3.Scale(math.Cos(angle)*radius, f.Normal),
		r3.Scale(math.Sin(angle)*radius, f.Binormal)))
}
