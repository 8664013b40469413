package paths

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func approxVec(t *testing.T, got, want r3.Vec, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol ||
		math.Abs(got.Y-want.Y) > tol ||
		math.Abs(got.Z-want.Z) > tol {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

// allVariants returns one instance of every sampler with defaults that
// pin offsets at the path endpoints.
func allVariants() map[string]Sampler {
	blend, _ := NewBlend(&Line{}, NewWave(0.5, 3), 0.3, 0.7)
	return map[string]Sampler{
		"line":      &Line{},
		"spline":    &Line{Mode: LineSmooth},
		"arc":       NewArc(2),
		"bounce":    NewBounce(3, 1, 0.5),
		"zigzag":    NewZigZag(0.5, 8, 7),
		"lightning": NewLightning(0.6, 12, 0.08, 7),
		"organic":   NewOrganicWave(0.7, 10, 7),
		"vortex":    NewVortex(0.8, 3),
		"noise":     NewNoise(NoiseAmplitude{X: 0.5, Y: 0.5, Z: 0.2}, 7),
		"wave":      NewWave(0.5, 3),
		"blend":     blend,
	}
}

func TestAllVariantsPinEndpoints(t *testing.T) {
	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 1, Z: -1},
		{X: 5, Y: 0, Z: 2},
	}

	for name, s := range allVariants() {
		if a, ok := s.(Animated); ok {
			a.OnPathChanged(points)
			a.Advance(1.0 / 60)
		}
		start := s.CalculatePointOnPath(points, 0)
		end := s.CalculatePointOnPath(points, 1)
		approxVec(t, start, points[0], 1e-9)
		approxVec(t, end, points[len(points)-1], 1e-9)
		if t.Failed() {
			t.Fatalf("variant %q does not pin endpoints", name)
		}
	}
}

func TestAllVariantsDegenerateInput(t *testing.T) {
	for name, s := range allVariants() {
		for _, points := range [][]r3.Vec{nil, {}, {{X: 1, Y: 2, Z: 3}}} {
			got := s.CalculatePointOnPath(points, 0.5)
			if got != (r3.Vec{}) {
				t.Errorf("variant %q with %d points: expected zero vector, got %+v",
					name, len(points), got)
			}
		}
	}
}

func TestSegmentAt(t *testing.T) {
	points := []r3.Vec{{}, {X: 1}, {X: 2}, {X: 3}}

	cases := []struct {
		t        float64
		wantIdx  int
		wantFrac float64
	}{
		{0, 0, 0},
		{0.5, 1, 0.5},
		{1, 2, 1},    // clamped to the last segment at its end
		{-0.5, 0, -1.5},
		{1.5, 2, 2.5}, // out-of-range extrapolates within the last segment
	}
	for _, c := range cases {
		idx, frac := segmentAt(points, c.t)
		if idx != c.wantIdx || math.Abs(frac-c.wantFrac) > 1e-12 {
			t.Errorf("segmentAt(t=%v): expected (%d, %v), got (%d, %v)",
				c.t, c.wantIdx, c.wantFrac, idx, frac)
		}
	}
}

func TestBasePointLinear(t *testing.T) {
	points := []r3.Vec{{}, {X: 10}}
	got := basePoint(points, 0.5)
	approxVec(t, got, r3.Vec{X: 5}, 1e-12)
}

func TestOffsetAxisHorizontalPath(t *testing.T) {
	axis := offsetAxis(r3.Vec{X: 1})
	approxVec(t, axis, r3.Vec{Y: 1}, 1e-12)
}

func TestOffsetAxisVerticalPath(t *testing.T) {
	axis := offsetAxis(r3.Vec{Y: 1})
	if math.Abs(axis.Y) > 1e-9 {
		t.Errorf("expected side axis for vertical tangent, got %+v", axis)
	}
	if math.Abs(r3.Norm(axis)-1) > 1e-9 {
		t.Errorf("expected unit axis, got norm %v", r3.Norm(axis))
	}
}

func TestFrameOrthonormal(t *testing.T) {
	for _, tangent := range []r3.Vec{
		{X: 1},
		{Y: 1}, // parallel to the reference up: fallback basis
		safeUnit(r3.Vec{X: 1, Y: 1, Z: 1}),
	} {
		f := frameFor(tangent)
		if math.Abs(r3.Dot(f.Tangent, f.Normal)) > 1e-9 ||
			math.Abs(r3.Dot(f.Tangent, f.Binormal)) > 1e-9 ||
			math.Abs(r3.Dot(f.Normal, f.Binormal)) > 1e-9 {
			t.Errorf("frame for %+v is not orthogonal", tangent)
		}
		if math.Abs(r3.Norm(f.Normal)-1) > 1e-9 || math.Abs(r3.Norm(f.Binormal)-1) > 1e-9 {
			t.Errorf("frame for %+v is not normalized", tangent)
		}
	}
}
