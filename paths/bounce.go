package paths

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounce replays a rest-peak-rest arch over equal sections of the path,
// each successive bounce scaled down geometrically by Damping. Global
// mode spreads Count bounces over the whole path; per-segment mode
// repeats the full pattern inside every segment with damping reset.
type Bounce struct {
	Count      int
	Height     float64
	Damping    float64
	PerSegment bool
	Shape      Curve
}

// NewBounce returns a bounce with the default arch shape.
func NewBounce(count int, height, damping float64) *Bounce {
	return &Bounce{Count: count, Height: height, Damping: damping, Shape: BounceShape()}
}

func (b *Bounce) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("bounce", points) {
		return r3.Vec{}
	}
	base := basePoint(points, t)

	var local float64
	var tangent r3.Vec
	if b.PerSegment {
		_, local = segmentAt(points, t)
		tangent = tangentAt(points, t)
	} else {
		local = clamp01(t)
		tangent = pathTangent(points)
	}

	return r3.Add(base, r3.Scale(b.offset(local), offsetAxis(tangent)))
}

// offset evaluates the bounce train at a section-local parameter.
func (b *Bounce) offset(t float64) float64 {
	count := b.Count
	if count < 1 {
		count = 1
	}
	scaled := t * float64(count)
	section := int(math.Floor(scaled))
	if section > count-1 {
		section = count - 1
	}
	local := scaled - float64(section)

	shape := b.Shape
	if shape == nil {
		shape = BounceShape()
	}
	return b.Height * math.Pow(b.Damping, float64(section)) * shape.Evaluate(local)
}
