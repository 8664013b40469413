package paths

// Curve maps a normalized input to a scalar, used to modulate offset
// amplitude over a path or a particle lifetime. The shape is caller
// defined; a nil curve is repaired to ConstantCurve(1) at use sites.
type Curve interface {
	Evaluate(t float64) float64
}

// ConstantCurve evaluates to a fixed value everywhere.
type ConstantCurve float64

func (c ConstantCurve) Evaluate(float64) float64 { return float64(c) }

// Keyframe is a single point of a PiecewiseCurve.
type Keyframe struct {
	T     float64
	Value float64
}

// PiecewiseCurve interpolates keyframes with cubic hermite segments,
// with tangents derived from neighboring keys. Keys must be sorted by T.
type PiecewiseCurve struct {
	Keys []Keyframe
}

// NewPiecewiseCurve builds a curve from keyframes in ascending T order.
func NewPiecewiseCurve(keys ...Keyframe) *PiecewiseCurve {
	return &PiecewiseCurve{Keys: keys}
}

// Evaluate returns the curve value at t, clamping outside the key range.
func (c *PiecewiseCurve) Evaluate(t float64) float64 {
	n := len(c.Keys)
	if n == 0 {
		return 1
	}
	if n == 1 || t <= c.Keys[0].T {
		return c.Keys[0].Value
	}
	if t >= c.Keys[n-1].T {
		return c.Keys[n-1].Value
	}
	i := 0
	for i < n-2 && t >= c.Keys[i+1].T {
		i++
	}
	k0, k1 := c.Keys[i], c.Keys[i+1]
	span := k1.T - k0.T
	if span <= 0 {
		return k1.Value
	}
	u := (t - k0.T) / span

	// Catmull-Rom style tangents from the neighboring keys, scaled to
	// the segment's parametric span.
	m0 := c.tangent(i) * span
	m1 := c.tangent(i+1) * span

	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2
	return h00*k0.Value + h10*m0 + h01*k1.Value + h11*m1
}

func (c *PiecewiseCurve) tangent(i int) float64 {
	n := len(c.Keys)
	if i == 0 {
		return c.secant(0)
	}
	if i == n-1 {
		return c.secant(n - 2)
	}
	// Flatten the tangent at local extrema and plateaus so the curve
	// never overshoots its key values.
	in, out := c.secant(i-1), c.secant(i)
	if in*out <= 0 {
		return 0
	}
	dt := c.Keys[i+1].T - c.Keys[i-1].T
	if dt <= 0 {
		return 0
	}
	return (c.Keys[i+1].Value - c.Keys[i-1].Value) / dt
}

// secant returns the slope of the segment between keys i and i+1.
func (c *PiecewiseCurve) secant(i int) float64 {
	dt := c.Keys[i+1].T - c.Keys[i].T
	if dt <= 0 {
		return 0
	}
	return (c.Keys[i+1].Value - c.Keys[i].Value) / dt
}

// BezierCurve is a tween shape defined by a cubic Bezier restricted to
// start at (0,0) and end at (1,1); X0,Y0 and X1,Y1 are the control
// points. The input is inverted with a few Newton iterations.
type BezierCurve struct {
	X0, Y0, X1, Y1 float64
}

func (b BezierCurve) Evaluate(t float64) float64 {
	x := clamp01(t)

	// Solve B_x(s) = x for s.
	s := x
	for i := 0; i < 5; i++ {
		s2 := s * s
		s3 := s2 * s
		d := 1 - s
		d2 := d * d
		nx := 3*d2*s*b.X0 + 3*d*s2*b.X1 + s3
		dxds := 3*d2*b.X0 + 6*d*s*(b.X1-b.X0) + 3*s2*(1-b.X1)
		if dxds == 0 {
			break
		}
		s -= (nx - x) / dxds
		if s <= 0 || s >= 1 {
			break
		}
	}
	s = clamp01(s)

	s2 := s * s
	s3 := s2 * s
	d := 1 - s
	d2 := d * d
	return 3*d2*s*b.Y0 + 3*d*s2*b.Y1 + s3
}

// ensureCurve repairs a nil curve to a flat unit curve.
func ensureCurve(c Curve) Curve {
	if c == nil {
		return ConstantCurve(1)
	}
	return c
}

// BounceShape returns the rest-peak-rest arch replayed by each bounce
// section: zero at both ends, exactly 1 at the midpoint.
func BounceShape() *PiecewiseCurve {
	return NewPiecewiseCurve(
		Keyframe{T: 0, Value: 0},
		Keyframe{T: 0.5, Value: 1},
		Keyframe{T: 1, Value: 0},
	)
}

// EndpointEnvelope returns a curve that is 1 over most of the path but
// fades to zero at both ends, pinning offsets at the control-point
// boundaries. Used as the default modulation for variants whose raw
// offset would otherwise not vanish at t=0 and t=1.
func EndpointEnvelope() *PiecewiseCurve {
	return NewPiecewiseCurve(
		Keyframe{T: 0, Value: 0},
		Keyframe{T: 0.15, Value: 1},
		Keyframe{T: 0.85, Value: 1},
		Keyframe{T: 1, Value: 0},
	)
}
