package paths

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Lightning displaces the path with a jagged offset pattern that is
// regenerated on a fixed interval, producing a strobing flicker. Each
// regeneration takes fresh draws from the same seeded source, so the
// flicker sequence is reproducible. Jaggedness controls both offset
// magnitude and how sharply adjacent offsets blend: high jaggedness
// snaps to the nearest offset for hard corners, low jaggedness blends
// with a smoothstep.
type Lightning struct {
	Amplitude       float64
	Jaggedness      float64
	Detail          int
	StrobeFrequency float64
	ScaleByLength   bool
	AmplitudeCurve  Curve

	src     *NoiseSource
	offsets []Offset2
	timer   float64
	phase   float64
	ready   bool
}

// smoothnessThreshold is the jaggedness-derived smoothness below which
// offset interpolation snaps to the nearest entry.
const smoothnessThreshold = 0.25

// NewLightning returns a lightning sampler regenerating at the given
// strobe interval in seconds.
func NewLightning(amplitude float64, detail int, strobeFrequency float64, seed int64) *Lightning {
	return &Lightning{
		Amplitude:       amplitude,
		Jaggedness:      0.8,
		Detail:          detail,
		StrobeFrequency: strobeFrequency,
		src:             NewNoiseSource(seed),
	}
}

// SetSeed re-derives the noise source and regenerates immediately.
func (l *Lightning) SetSeed(seed int64) {
	l.source().Reseed(seed)
	l.regenerate()
}

// Advance accumulates time and regenerates the pattern each time the
// strobe interval elapses.
func (l *Lightning) Advance(dt float64) {
	if !l.ready {
		l.regenerate()
	}
	interval := l.StrobeFrequency
	if interval <= 0 {
		return
	}
	l.timer += dt
	for l.timer >= interval {
		l.timer -= interval
		l.regenerate()
	}
}

// OnPathChanged keeps the existing pattern; lightning regenerates on
// its own clock, not on path edits.
func (l *Lightning) OnPathChanged([]r3.Vec) {}

func (l *Lightning) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("lightning", points) {
		return r3.Vec{}
	}
	if !l.ready {
		l.regenerate()
	}

	var offset Offset2
	if 1-l.Jaggedness < smoothnessThreshold {
		offset = nearestOffset(l.offsets, clamp01(t))
	} else {
		offset = sampleOffsets(l.offsets, clamp01(t), smoothstep)
	}

	scale := l.Amplitude * ensureCurve(l.AmplitudeCurve).Evaluate(clamp01(t))
	if l.ScaleByLength {
		scale *= PathLength(points)
	}

	base := basePoint(points, t)
	return r3.Add(base, frameFor(pathTangent(points)).Apply(offset.Scale(scale)))
}

func (l *Lightning) source() *NoiseSource {
	if l.src == nil {
		l.src = NewNoiseSource(0)
	}
	return l.src
}

func (l *Lightning) regenerate() {
	detail := l.Detail
	if detail < 2 {
		detail = 2
	}
	// Each strobe samples the noise field at a new phase so the angles
	// decorrelate between flashes.
	l.phase += 1.37
	l.offsets = noiseAngleOffsets(l.source(), detail, l.Jaggedness, l.phase)
	l.ready = true
}
