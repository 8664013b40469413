// Package paths provides interchangeable algorithms that map a normalized
// parameter to a 3D position along an ordered sequence of control points.
//
// All samplers share the same parameterization: t is mapped to a path
// segment index-proportionally, assuming equal parametric length per
// segment regardless of geometric length. Variants then displace the
// interpolated base position perpendicular to the path.
package paths

import (
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sampler computes a position along a control-point path.
// points must contain at least two entries; degenerate input yields the
// zero vector and a rate-limited warning, never a panic.
type Sampler interface {
	CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec
}

// Animated is implemented by samplers that carry time-driven internal
// state. Advance must be called once per tick before any sampling call
// that tick; OnPathChanged whenever the owner replaces the point list.
type Animated interface {
	Sampler
	Advance(dt float64)
	OnPathChanged(points []r3.Vec)
}

// Seedable is implemented by samplers whose jitter is reproducible.
// SetSeed re-derives the internal generator and forces regeneration of
// any cached offset pattern.
type Seedable interface {
	SetSeed(seed int64)
}

const sin45 = 0.70710678118654752440

// worldUp is the reference up axis for perpendicular derivation.
var worldUp = r3.Vec{Y: 1}

// degenerate warnings are throttled so a misconfigured effect ticking at
// 60Hz does not flood the log.
var lastDegenerateWarn time.Time

func checkPoints(variant string, points []r3.Vec) bool {
	if len(points) >= 2 {
		return true
	}
	if now := time.Now(); now.Sub(lastDegenerateWarn) > time.Second {
		lastDegenerateWarn = now
		slog.Warn("path sampler needs at least 2 points", "variant", variant, "got", len(points))
	}
	return false
}

// segmentAt maps t to a segment index and a segment-local fraction.
// The index is clamped to the last segment so t=1 lands on its end.
func segmentAt(points []r3.Vec, t float64) (int, float64) {
	segs := len(points) - 1
	scaled := t * float64(segs)
	idx := int(math.Floor(scaled))
	if idx < 0 {
		idx = 0
	}
	if idx > segs-1 {
		idx = segs - 1
	}
	return idx, scaled - float64(idx)
}

// basePoint returns the index-proportional linear interpolation along
// the path. Every variant starts from this position before offsetting.
func basePoint(points []r3.Vec, t float64) r3.Vec {
	i, u := segmentAt(points, t)
	return lerpVec(points[i], points[i+1], u)
}

// tangentAt returns the normalized direction of the segment bracketing t.
func tangentAt(points []r3.Vec, t float64) r3.Vec {
	i, _ := segmentAt(points, t)
	return safeUnit(r3.Sub(points[i+1], points[i]))
}

// pathTangent returns the normalized first-to-last direction.
func pathTangent(points []r3.Vec) r3.Vec {
	return safeUnit(r3.Sub(points[len(points)-1], points[0]))
}

func lerpVec(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// safeUnit normalizes v, returning worldUp for a near-zero input so
// downstream cross products stay well defined.
func safeUnit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n < 1e-12 {
		return worldUp
	}
	return r3.Scale(1/n, v)
}

// offsetAxis picks the direction lateral offsets are applied along.
// For mostly horizontal tangents this is the perpendicular-up in the
// vertical plane of the tangent; near-vertical tangents would make that
// axis degenerate, so a side vector is used instead.
func offsetAxis(tangent r3.Vec) r3.Vec {
	if math.Abs(tangent.Y) < sin45 {
		side := safeUnit(r3.Cross(tangent, worldUp))
		return safeUnit(r3.Cross(side, tangent))
	}
	return safeUnit(r3.Cross(tangent, r3.Vec{Z: 1}))
}

// Frame is a per-point orthonormal basis used to express 2D offsets in
// world space: Normal is the primary (up-ish) offset axis, Binormal the
// secondary (side) axis.
type Frame struct {
	Tangent  r3.Vec
	Normal   r3.Vec
	Binormal r3.Vec
}

// frameFor builds a Frame from a tangent, falling back to an alternate
// reference axis when the tangent is parallel to worldUp.
func frameFor(tangent r3.Vec) Frame {
	ref := worldUp
	if math.Abs(r3.Dot(tangent, ref)) > 0.999 {
		ref = r3.Vec{Z: 1}
	}
	binormal := safeUnit(r3.Cross(tangent, ref))
	normal := safeUnit(r3.Cross(binormal, tangent))
	return Frame{Tangent: tangent, Normal: normal, Binormal: binormal}
}

// Apply converts a 2D offset into a world-space displacement.
func (f Frame) Apply(o Offset2) r3.Vec {
	return r3.Add(r3.Scale(o.X, f.Normal), r3.Scale(o.Y, f.Binormal))
}
