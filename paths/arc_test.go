package paths

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestArcApex(t *testing.T) {
	a := NewArc(2)
	points := []r3.Vec{{}, {X: 10}}

	// Offset magnitude at the apex: 2 * 4 * 0.5 * 0.5 = 2, applied
	// along the perpendicular-up axis of a horizontal path.
	got := a.CalculatePointOnPath(points, 0.5)
	approxVec(t, got, r3.Vec{X: 5, Y: 2}, 1e-12)
}

func TestArcBiasMovesApex(t *testing.T) {
	a := &Arc{Height: 1, Bias: 0.25}
	points := []r3.Vec{{}, {X: 10}}

	// The apex lands at the bias parameter.
	apex := a.CalculatePointOnPath(points, 0.25)
	if math.Abs(apex.Y-1) > 1e-12 {
		t.Errorf("expected apex height 1 at t=bias, got %v", apex.Y)
	}
	for _, tt := range []float64{0.1, 0.5, 0.8} {
		if y := a.CalculatePointOnPath(points, tt).Y; y >= apex.Y {
			t.Errorf("expected offset at t=%v below the apex, got %v", tt, y)
		}
	}
}

func TestArcPerSegment(t *testing.T) {
	a := &Arc{Height: 1, Bias: 0.5, PerSegment: true}
	points := []r3.Vec{{}, {X: 4}, {X: 8}}

	// Midpoint of each segment is a full-height apex; the segment
	// boundary is back at rest.
	approxVec(t, a.CalculatePointOnPath(points, 0.25), r3.Vec{X: 2, Y: 1}, 1e-12)
	approxVec(t, a.CalculatePointOnPath(points, 0.5), r3.Vec{X: 4}, 1e-12)
	approxVec(t, a.CalculatePointOnPath(points, 0.75), r3.Vec{X: 6, Y: 1}, 1e-12)
}

func TestArcVerticalPathUsesSideAxis(t *testing.T) {
	a := NewArc(1)
	points := []r3.Vec{{}, {Y: 10}}

	got := a.CalculatePointOnPath(points, 0.5)
	// Offset must not stretch the path along itself.
	if math.Abs(got.Y-5) > 1e-9 {
		t.Errorf("expected base Y=5 preserved, got %v", got.Y)
	}
	horizontal := math.Hypot(got.X, got.Z)
	if math.Abs(horizontal-1) > 1e-9 {
		t.Errorf("expected unit side offset, got %v", horizontal)
	}
}
