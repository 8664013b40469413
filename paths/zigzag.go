package paths

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// lengthDriftThreshold is how far the cached path length may drift, in
// world units, before an adaptive offset pattern is rebuilt.
const lengthDriftThreshold = 0.5

// ZigZag displaces the path with an alternating-sign offset pattern.
// Detail fixes the number of zig segments; with AdaptiveDetail set, the
// count instead follows the path length (SegmentsPerUnit per world
// unit, minimum 2) and the pattern is rebuilt whenever the length
// drifts by more than half a unit.
type ZigZag struct {
	Amplitude       float64
	Randomness      float64
	Detail          int
	AdaptiveDetail  bool
	SegmentsPerUnit float64
	ScaleByLength   bool
	AmplitudeCurve  Curve
	PerSegment      bool

	src          *NoiseSource
	offsets      []Offset2
	cachedDetail int
	cachedLength float64
	ready        bool
}

// NewZigZag returns a zig-zag sampler with a fixed detail level.
func NewZigZag(amplitude float64, detail int, seed int64) *ZigZag {
	return &ZigZag{
		Amplitude: amplitude,
		Detail:    detail,
		src:       NewNoiseSource(seed),
	}
}

// SetSeed re-derives the jitter source and forces pattern regeneration.
func (z *ZigZag) SetSeed(seed int64) {
	z.source().Reseed(seed)
	z.ready = false
}

// Advance is a no-op; the pattern changes on reseed or path change, not
// with time. It keeps path-change notifications flowing to the cache.
func (z *ZigZag) Advance(float64) {}

// OnPathChanged rebuilds the pattern when the detail level it implies
// has changed, or when the cached path length has drifted past the
// rebuild threshold.
func (z *ZigZag) OnPathChanged(points []r3.Vec) {
	if len(points) < 2 {
		return
	}
	length := PathLength(points)
	if !z.ready {
		z.rebuild(length)
		return
	}
	if z.detailFor(length) != z.cachedDetail ||
		math.Abs(length-z.cachedLength) > lengthDriftThreshold {
		z.rebuild(length)
	}
}

func (z *ZigZag) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("zigzag", points) {
		return r3.Vec{}
	}
	length := PathLength(points)
	if !z.ready || z.detailFor(length) != z.cachedDetail {
		z.rebuild(length)
	}

	base := basePoint(points, t)

	var offset Offset2
	var tangent r3.Vec
	if z.PerSegment {
		// Re-derive a zig sub-index within the bracketing segment and
		// orient against that segment's own tangent.
		_, local := segmentAt(points, t)
		offset = sampleOffsets(z.offsets, local, nil)
		tangent = tangentAt(points, t)
	} else {
		offset = sampleOffsets(z.offsets, clamp01(t), nil)
		tangent = pathTangent(points)
	}

	scale := z.Amplitude * ensureCurve(z.AmplitudeCurve).Evaluate(clamp01(t))
	if z.ScaleByLength {
		scale *= length
	}
	return r3.Add(base, frameFor(tangent).Apply(offset.Scale(scale)))
}

func (z *ZigZag) source() *NoiseSource {
	if z.src == nil {
		z.src = NewNoiseSource(0)
	}
	return z.src
}

func (z *ZigZag) detailFor(length float64) int {
	if !z.AdaptiveDetail {
		if z.Detail < 2 {
			return 2
		}
		return z.Detail
	}
	detail := int(math.Round(length * z.SegmentsPerUnit))
	if detail < 2 {
		detail = 2
	}
	return detail
}

func (z *ZigZag) rebuild(length float64) {
	detail := z.detailFor(length)
	z.offsets = zigzagOffsets(z.source(), detail, z.Randomness)
	z.cachedDetail = detail
	z.cachedLength = length
	z.ready = true
}
