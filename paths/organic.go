package paths

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/spatial/r3"
)

// OrganicWave drifts the path's offset pattern continuously instead of
// strobing it. It keeps a current and a target offset array; the target
// is regenerated periodically from noise angles, and each tick the
// current offsets are spring-damped toward a blend of themselves and
// the target, with a small sinusoidal wobble layered on per index.
type OrganicWave struct {
	Amplitude       float64
	Detail          int
	FlowAmount      float64 // 0..1, how far each tick's goal leans toward the target
	TargetInterval  float64 // seconds between target regenerations
	MicroMotion     float64 // wobble magnitude relative to Amplitude
	MicroSpeed      float64 // wobble angular speed, radians per second
	ScaleByLength   bool
	AmplitudeCurve  Curve
	SpringFrequency float64 // angular frequency of the chasing spring
	SpringDamping   float64 // damping ratio, 1 = critically damped

	src      *NoiseSource
	spring   harmonica.Spring
	springDT float64
	current  []Offset2
	target   []Offset2
	velocity []Offset2
	phases   []float64
	timer    float64
	time     float64
	noiseT   float64
	ready    bool
}

// NewOrganicWave returns an organic wave with critically damped chasing.
func NewOrganicWave(amplitude float64, detail int, seed int64) *OrganicWave {
	return &OrganicWave{
		Amplitude:       amplitude,
		Detail:          detail,
		FlowAmount:      0.6,
		TargetInterval:  1.5,
		MicroMotion:     0.08,
		MicroSpeed:      2.0,
		SpringFrequency: 4.0,
		SpringDamping:   1.0,
		src:             NewNoiseSource(seed),
	}
}

// SetSeed re-derives the noise source and restarts the pattern.
func (o *OrganicWave) SetSeed(seed int64) {
	o.source().Reseed(seed)
	o.ready = false
}

// OnPathChanged resets cached state when the detail level it implies no
// longer matches the allocated arrays.
func (o *OrganicWave) OnPathChanged([]r3.Vec) {
	if o.ready && len(o.current) != o.detail()+1 {
		o.ready = false
	}
}

// Advance moves the current offsets toward the target and regenerates
// the target when its interval elapses.
func (o *OrganicWave) Advance(dt float64) {
	if !o.ready {
		o.initState()
	}
	o.ensureSpring(dt)

	o.time += dt
	if o.time > 1e4 {
		o.time -= 1e4
	}

	interval := o.TargetInterval
	if interval <= 0 {
		interval = 1.5
	}
	o.timer += dt
	for o.timer >= interval {
		o.timer -= interval
		o.regenerateTarget()
	}

	for i := 1; i < len(o.current)-1; i++ {
		goal := lerpOffset(o.current[i], o.target[i], clamp01(o.FlowAmount))

		// Distinct sine/cosine phases per index give each point its own
		// idle wobble on top of the chase.
		wob := o.MicroMotion
		goal.X += math.Sin(o.time*o.MicroSpeed+o.phases[i]) * wob
		goal.Y += math.Cos(o.time*o.MicroSpeed*1.3+o.phases[i]*2) * wob * 0.5

		px, vx := o.spring.Update(o.current[i].X, o.velocity[i].X, goal.X)
		py, vy := o.spring.Update(o.current[i].Y, o.velocity[i].Y, goal.Y)
		o.current[i] = Offset2{X: px, Y: py}
		o.velocity[i] = Offset2{X: vx, Y: vy}
	}

	// Endpoints re-pinned every tick.
	o.current[0] = Offset2{}
	o.current[len(o.current)-1] = Offset2{}
}

func (o *OrganicWave) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("organic", points) {
		return r3.Vec{}
	}
	if !o.ready {
		o.initState()
	}

	// The amplitude envelope is baked into the target pattern at
	// regeneration time, not reapplied per sample.
	offset := sampleOffsets(o.current, clamp01(t), smoothstep)
	scale := o.Amplitude
	if o.ScaleByLength {
		scale *= PathLength(points)
	}

	base := basePoint(points, t)
	return r3.Add(base, frameFor(pathTangent(points)).Apply(offset.Scale(scale)))
}

func (o *OrganicWave) source() *NoiseSource {
	if o.src == nil {
		o.src = NewNoiseSource(0)
	}
	return o.src
}

func (o *OrganicWave) detail() int {
	if o.Detail < 2 {
		return 2
	}
	return o.Detail
}

// ensureSpring rebuilds the chasing spring whenever the tick duration
// changes, so the spring integrates at the caller's actual step.
func (o *OrganicWave) ensureSpring(dt float64) {
	if dt <= 0 || dt == o.springDT {
		return
	}
	freq := o.SpringFrequency
	if freq <= 0 {
		freq = 4.0
	}
	damping := o.SpringDamping
	if damping <= 0 {
		damping = 1.0
	}
	o.spring = harmonica.NewSpring(dt, freq, damping)
	o.springDT = dt
}

func (o *OrganicWave) initState() {
	n := o.detail() + 1
	o.current = make([]Offset2, n)
	o.velocity = make([]Offset2, n)
	o.phases = make([]float64, n)
	for i := range o.phases {
		o.phases[i] = o.source().UnitJitter() * 2 * math.Pi
	}
	o.timer = 0
	o.ready = true
	o.regenerateTarget()
}

func (o *OrganicWave) regenerateTarget() {
	o.noiseT += 0.61
	o.target = noiseAngleOffsets(o.source(), o.detail(), 1, o.noiseT)
	envelope := ensureCurve(o.AmplitudeCurve)
	for i := range o.target {
		o.target[i] = o.target[i].Scale(envelope.Evaluate(float64(i) / float64(len(o.target)-1)))
	}
}
