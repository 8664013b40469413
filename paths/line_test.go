package paths

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLineSegmentedMidpoint(t *testing.T) {
	l := &Line{}
	points := []r3.Vec{{}, {X: 10}}

	got := l.CalculatePointOnPath(points, 0.5)
	approxVec(t, got, r3.Vec{X: 5}, 1e-12)
}

func TestLineSegmentedMultiSegment(t *testing.T) {
	l := &Line{}
	points := []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}

	// t=0.5 is the boundary between the two segments.
	got := l.CalculatePointOnPath(points, 0.5)
	approxVec(t, got, r3.Vec{X: 1}, 1e-12)

	got = l.CalculatePointOnPath(points, 0.75)
	approxVec(t, got, r3.Vec{X: 1, Y: 0.5}, 1e-12)
}

func TestLineSmoothPassesThroughControlPoints(t *testing.T) {
	l := &Line{Mode: LineSmooth}
	points := []r3.Vec{{}, {X: 2, Y: 1}, {X: 4, Y: -1}, {X: 6}}

	// Parameter values landing exactly on control points.
	for i, want := range points {
		tt := float64(i) / float64(len(points)-1)
		got := l.CalculatePointOnPath(points, tt)
		approxVec(t, got, want, 1e-9)
	}
}

func TestLineSmoothTwoPointPathIsStraight(t *testing.T) {
	smooth := &Line{Mode: LineSmooth}
	points := []r3.Vec{{}, {X: 10, Y: 4, Z: -2}}

	// With only two points the virtual reflections are collinear, so
	// the spline degenerates to the segment itself.
	for _, tt := range []float64{0.1, 0.35, 0.6, 0.9} {
		approxVec(t,
			smooth.CalculatePointOnPath(points, tt),
			lerpVec(points[0], points[1], tt),
			1e-9)
	}
}

func TestLineSmoothDeviatesFromSegments(t *testing.T) {
	smooth := &Line{Mode: LineSmooth}
	straight := &Line{}
	points := []r3.Vec{{}, {X: 2, Y: 2}, {X: 4}}

	a := smooth.CalculatePointOnPath(points, 0.25)
	b := straight.CalculatePointOnPath(points, 0.25)
	if r3.Norm(r3.Sub(a, b)) < 1e-6 {
		t.Error("expected smooth spline to bow away from the straight segments")
	}
}
