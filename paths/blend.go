package paths

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrMissingChild is returned when a Blend is built without both child
// samplers.
var ErrMissingChild = errors.New("paths: blend requires two child samplers")

// Blend composes two samplers over a transition window. Below
// TransitionStart the result is A's exactly; above TransitionEnd it is
// B's exactly; inside the window t is remapped to [0,1], BlendCurve
// yields a mix factor and the two sampled positions are interpolated.
type Blend struct {
	A, B            Sampler
	BlendCurve      Curve
	TransitionStart float64
	TransitionEnd   float64
}

// NewBlend validates the children at configuration time. A blend with a
// missing child degrades to returning the other child's result (or the
// zero vector) rather than panicking, but the error is surfaced here.
func NewBlend(a, b Sampler, transitionStart, transitionEnd float64) (*Blend, error) {
	if a == nil || b == nil {
		return nil, ErrMissingChild
	}
	return &Blend{
		A:               a,
		B:               b,
		TransitionStart: transitionStart,
		TransitionEnd:   transitionEnd,
	}, nil
}

// Advance forwards the tick to both children.
func (bl *Blend) Advance(dt float64) {
	if a, ok := bl.A.(Animated); ok {
		a.Advance(dt)
	}
	if b, ok := bl.B.(Animated); ok {
		b.Advance(dt)
	}
}

// OnPathChanged propagates the new point list to both children.
func (bl *Blend) OnPathChanged(points []r3.Vec) {
	if a, ok := bl.A.(Animated); ok {
		a.OnPathChanged(points)
	}
	if b, ok := bl.B.(Animated); ok {
		b.OnPathChanged(points)
	}
}

// SetSeed forwards the seed to any seedable child.
func (bl *Blend) SetSeed(seed int64) {
	if a, ok := bl.A.(Seedable); ok {
		a.SetSeed(seed)
	}
	if b, ok := bl.B.(Seedable); ok {
		b.SetSeed(seed)
	}
}

func (bl *Blend) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("blend", points) {
		return r3.Vec{}
	}
	switch {
	case bl.A == nil && bl.B == nil:
		return r3.Vec{}
	case bl.A == nil:
		return bl.B.CalculatePointOnPath(points, t)
	case bl.B == nil:
		return bl.A.CalculatePointOnPath(points, t)
	}

	if t <= bl.TransitionStart {
		return bl.A.CalculatePointOnPath(points, t)
	}
	if t >= bl.TransitionEnd {
		return bl.B.CalculatePointOnPath(points, t)
	}

	span := bl.TransitionEnd - bl.TransitionStart
	if span <= 0 {
		return bl.B.CalculatePointOnPath(points, t)
	}
	window := (t - bl.TransitionStart) / span
	// A missing blend curve falls back to a linear mix rather than flat.
	mix := window
	if bl.BlendCurve != nil {
		mix = clamp01(bl.BlendCurve.Evaluate(window))
	}

	pa := bl.A.CalculatePointOnPath(points, t)
	pb := bl.B.CalculatePointOnPath(points, t)
	return lerpVec(pa, pb, mix)
}
