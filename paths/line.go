package paths

import "gonum.org/v1/gonum/spatial/r3"

// LineMode selects how Line interpolates between control points.
type LineMode uint8

const (
	// LineSegmented interpolates linearly within each segment.
	LineSegmented LineMode = iota
	// LineSmooth runs a Catmull-Rom spline through the control points.
	LineSmooth
)

// Line samples the path either as straight segments or as a smooth
// spline. Tension applies in smooth mode only: 0 is a full Catmull-Rom
// curve, 1 degenerates to straight segments.
type Line struct {
	Mode    LineMode
	Tension float64
}

func (l *Line) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("line", points) {
		return r3.Vec{}
	}
	if l.Mode == LineSegmented {
		return basePoint(points, t)
	}
	return l.splinePoint(points, t)
}

// splinePoint evaluates a cardinal spline through the four control
// points bracketing t. Virtual points beyond the first and last are
// extrapolated by reflection so the curve still passes through the
// path's endpoints.
func (l *Line) splinePoint(points []r3.Vec, t float64) r3.Vec {
	i, u := segmentAt(points, t)

	p1 := points[i]
	p2 := points[i+1]
	var p0, p3 r3.Vec
	if i > 0 {
		p0 = points[i-1]
	} else {
		p0 = r3.Sub(r3.Scale(2, p1), p2)
	}
	if i+2 < len(points) {
		p3 = points[i+2]
	} else {
		p3 = r3.Sub(r3.Scale(2, p2), p1)
	}

	alpha := 1 - clamp01(l.Tension)
	m1 := r3.Scale(alpha*0.5, r3.Sub(p2, p0))
	m2 := r3.Scale(alpha*0.5, r3.Sub(p3, p1))

	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	return r3.Add(
		r3.Add(r3.Scale(h00, p1), r3.Scale(h10, m1)),
		r3.Add(r3.Scale(h01, p2), r3.Scale(h11, m2)))
}
