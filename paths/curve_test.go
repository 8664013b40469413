package paths

import (
	"math"
	"testing"
)

func TestConstantCurve(t *testing.T) {
	c := ConstantCurve(0.35)
	for _, tt := range []float64{-1, 0, 0.5, 1, 2} {
		if got := c.Evaluate(tt); got != 0.35 {
			t.Errorf("t=%v: expected 0.35, got %v", tt, got)
		}
	}
}

func TestPiecewiseCurveHitsKeys(t *testing.T) {
	c := NewPiecewiseCurve(
		Keyframe{T: 0, Value: 0},
		Keyframe{T: 0.25, Value: 1},
		Keyframe{T: 0.75, Value: 0.5},
		Keyframe{T: 1, Value: 0},
	)
	for _, k := range c.Keys {
		if got := c.Evaluate(k.T); math.Abs(got-k.Value) > 1e-12 {
			t.Errorf("t=%v: expected key value %v, got %v", k.T, k.Value, got)
		}
	}
}

func TestPiecewiseCurveClampsOutsideRange(t *testing.T) {
	c := NewPiecewiseCurve(
		Keyframe{T: 0.2, Value: 3},
		Keyframe{T: 0.8, Value: 7},
	)
	if got := c.Evaluate(-1); got != 3 {
		t.Errorf("expected clamp to first key value 3, got %v", got)
	}
	if got := c.Evaluate(2); got != 7 {
		t.Errorf("expected clamp to last key value 7, got %v", got)
	}
}

func TestPiecewiseCurveEmptyAndSingleKey(t *testing.T) {
	empty := NewPiecewiseCurve()
	if got := empty.Evaluate(0.5); got != 1 {
		t.Errorf("expected empty curve to evaluate to 1, got %v", got)
	}
	single := NewPiecewiseCurve(Keyframe{T: 0.5, Value: 0.25})
	for _, tt := range []float64{0, 0.5, 1} {
		if got := single.Evaluate(tt); got != 0.25 {
			t.Errorf("t=%v: expected 0.25, got %v", tt, got)
		}
	}
}

func TestBounceShapePeak(t *testing.T) {
	c := BounceShape()
	if got := c.Evaluate(0.5); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected peak 1 at midpoint, got %v", got)
	}
	if got := c.Evaluate(0); got != 0 {
		t.Errorf("expected rest at start, got %v", got)
	}
	if got := c.Evaluate(1); got != 0 {
		t.Errorf("expected rest at end, got %v", got)
	}
}

func TestEndpointEnvelope(t *testing.T) {
	c := EndpointEnvelope()
	if got := c.Evaluate(0); got != 0 {
		t.Errorf("expected 0 at start, got %v", got)
	}
	if got := c.Evaluate(1); got != 0 {
		t.Errorf("expected 0 at end, got %v", got)
	}
	if got := c.Evaluate(0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected 1 over the interior plateau, got %v", got)
	}
}

func TestBezierCurveEndpointsAndLinear(t *testing.T) {
	linear := BezierCurve{X0: 1.0 / 3, Y0: 1.0 / 3, X1: 2.0 / 3, Y1: 2.0 / 3}
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := linear.Evaluate(tt); math.Abs(got-tt) > 1e-6 {
			t.Errorf("t=%v: expected linear bezier to pass through, got %v", tt, got)
		}
	}

	ease := BezierCurve{X0: 0.42, Y0: 0, X1: 0.58, Y1: 1}
	if got := ease.Evaluate(0); math.Abs(got) > 1e-9 {
		t.Errorf("expected 0 at t=0, got %v", got)
	}
	if got := ease.Evaluate(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected 1 at t=1, got %v", got)
	}
	if got := ease.Evaluate(0.5); math.Abs(got-0.5) > 1e-3 {
		t.Errorf("expected symmetric ease midpoint near 0.5, got %v", got)
	}
	if lo, hi := ease.Evaluate(0.2), ease.Evaluate(0.8); !(lo < 0.2 && hi > 0.8) {
		t.Errorf("expected ease-in-out shape, got %v and %v", lo, hi)
	}
}

func TestEnsureCurve(t *testing.T) {
	if got := ensureCurve(nil).Evaluate(0.3); got != 1 {
		t.Errorf("expected nil curve repaired to 1, got %v", got)
	}
	c := ConstantCurve(2)
	if got := ensureCurve(c); got != c {
		t.Errorf("expected non-nil curve passed through, got %v", got)
	}
}
