package paths

import "gonum.org/v1/gonum/spatial/r3"

// Arc displaces the path along a parabola, peaking at Height. In single
// mode the parabola spans the whole path; in per-segment mode it repeats
// over each segment independently. Bias shifts the apex: 0.5 is the
// symmetric middle, smaller values pull it toward the start.
type Arc struct {
	Height     float64
	Bias       float64
	PerSegment bool
}

// NewArc returns an arc with a centered apex.
func NewArc(height float64) *Arc {
	return &Arc{Height: height, Bias: 0.5}
}

func (a *Arc) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("arc", points) {
		return r3.Vec{}
	}
	base := basePoint(points, t)

	var local float64
	var tangent r3.Vec
	if a.PerSegment {
		_, local = segmentAt(points, t)
		tangent = tangentAt(points, t)
	} else {
		local = clamp01(t)
		tangent = pathTangent(points)
	}

	offset := a.Height * parabola(local, a.Bias)
	return r3.Add(base, r3.Scale(offset, offsetAxis(tangent)))
}

// parabola evaluates 4t(1-t), remapping t piecewise so the apex lands
// at the bias parameter instead of the midpoint.
func parabola(t, bias float64) float64 {
	if bias > 0 && bias < 1 && bias != 0.5 {
		if t < bias {
			t = 0.5 * t / bias
		} else {
			t = 0.5 + 0.5*(t-bias)/(1-bias)
		}
	}
	return 4 * t * (1 - t)
}
