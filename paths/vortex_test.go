package paths

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVortexRadiusAtMidpoint(t *testing.T) {
	v := NewVortex(1, 2)
	v.RadiusCurve = ConstantCurve(1)
	v.StartRadius = 0.5
	v.EndRadius = 1.5
	points := []r3.Vec{{}, {X: 10}}

	got := v.CalculatePointOnPath(points, 0.5)
	radius := math.Hypot(got.Y, got.Z)
	if math.Abs(radius-1.0) > 1e-9 {
		t.Errorf("expected interpolated radius 1.0 at midpoint, got %v", radius)
	}
	if math.Abs(got.X-5) > 1e-9 {
		t.Errorf("expected base X=5 preserved, got %v", got.X)
	}
}

func TestVortexDefaultEnvelopePinsEndpoints(t *testing.T) {
	v := NewVortex(1, 3)
	points := []r3.Vec{{}, {X: 5, Y: 2}, {X: 10}}

	approxVec(t, v.CalculatePointOnPath(points, 0), points[0], 1e-9)
	approxVec(t, v.CalculatePointOnPath(points, 1), points[2], 1e-9)
}

func TestVortexRotationDirection(t *testing.T) {
	points := []r3.Vec{{}, {X: 10}}

	cw := NewVortex(1, 1)
	cw.RadiusCurve = ConstantCurve(1)
	ccw := NewVortex(1, 1)
	ccw.RadiusCurve = ConstantCurve(1)
	ccw.CounterClockwise = true

	// At a quarter rotation the two directions land on opposite sides.
	a := cw.CalculatePointOnPath(points, 0.25)
	b := ccw.CalculatePointOnPath(points, 0.25)
	if math.Abs(a.Z+b.Z) > 1e-9 {
		t.Errorf("expected mirrored side components, got %v and %v", a.Z, b.Z)
	}
}

func TestVortexAdvanceSpinsHelix(t *testing.T) {
	points := []r3.Vec{{}, {X: 10}}

	v := NewVortex(1, 1)
	v.RadiusCurve = ConstantCurve(1)
	v.RotationSpeed = 2

	before := v.CalculatePointOnPath(points, 0.5)
	v.Advance(0.25)
	after := v.CalculatePointOnPath(points, 0.5)
	if r3.Norm(r3.Sub(before, after)) < 1e-6 {
		t.Error("expected the helix to spin after Advance")
	}
}

func TestVortexAdaptRotations(t *testing.T) {
	// A dog-leg path twice as long as its chord doubles the turn count.
	bent := []r3.Vec{{}, {X: 5, Y: 5}, {X: 10, Y: 0}}

	plain := NewVortex(1, 1)
	plain.RadiusCurve = ConstantCurve(1)
	adaptive := NewVortex(1, 1)
	adaptive.RadiusCurve = ConstantCurve(1)
	adaptive.AdaptRotations = true

	ratio := PathLength(bent) / ChordLength(bent)
	if ratio <= 1.01 {
		t.Fatalf("test path must bend, ratio %v", ratio)
	}
	// At t=0.5 the plain vortex has completed half a turn, the adaptive
	// one half of ratio turns; their phases must differ.
	a := plain.CalculatePointOnPath(bent, 0.5)
	b := adaptive.CalculatePointOnPath(bent, 0.5)
	if r3.Norm(r3.Sub(a, b)) < 1e-6 {
		t.Error("expected adapted rotation count to change the sample")
	}
}
