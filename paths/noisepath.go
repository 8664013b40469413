package paths

import "gonum.org/v1/gonum/spatial/r3"

// NoiseAmplitude is the per-axis offset scale of a Noise sampler,
// expressed in the path-local frame: X along the primary perpendicular,
// Y along the side axis, Z along the tangent.
type NoiseAmplitude struct {
	X, Y, Z float64
}

// Noise perturbs the path with multi-octave Perlin noise. Each local
// axis samples its own coordinate stream so the three components are
// statistically independent, and an internal time accumulator advects
// the streams for continuous motion.
type Noise struct {
	Amplitude      NoiseAmplitude
	Frequency      float64
	Octaves        int
	Persistence    float64
	Speed          float64
	ScaleByLength  bool
	AmplitudeCurve Curve

	perlin *Perlin
	seed   int64
	time   float64
}

// Per-stream offsets keeping the three axis samples decorrelated.
const (
	noiseStreamX = 0.0
	noiseStreamY = 37.2
	noiseStreamZ = 74.9
)

// NewNoise returns a noise sampler with offsets faded out at the path
// endpoints.
func NewNoise(amplitude NoiseAmplitude, seed int64) *Noise {
	return &Noise{
		Amplitude:      amplitude,
		Frequency:      1.5,
		Octaves:        3,
		Persistence:    0.5,
		Speed:          0.5,
		AmplitudeCurve: EndpointEnvelope(),
		perlin:         NewPerlin(seed),
		seed:           seed,
	}
}

// SetSeed rebuilds the permutation table from the new seed.
func (n *Noise) SetSeed(seed int64) {
	n.seed = seed
	n.perlin = NewPerlin(seed)
}

// Advance advects the sampling coordinate.
func (n *Noise) Advance(dt float64) {
	n.time += dt * n.Speed
	if n.time > 1e4 {
		n.time -= 1e4
	}
}

// OnPathChanged is a no-op; noise carries no per-path cache.
func (n *Noise) OnPathChanged([]r3.Vec) {}

func (n *Noise) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("noise", points) {
		return r3.Vec{}
	}
	if n.perlin == nil {
		n.perlin = NewPerlin(n.seed)
	}

	tc := clamp01(t)
	x := tc * n.Frequency

	octaves := n.Octaves
	if octaves < 1 {
		octaves = 1
	}
	persistence := n.Persistence
	if persistence <= 0 {
		persistence = 0.5
	}

	nx := n.perlin.Octave3D(x, noiseStreamX, n.time, octaves, persistence)
	ny := n.perlin.Octave3D(x, noiseStreamY, n.time, octaves, persistence)
	nz := n.perlin.Octave3D(x, noiseStreamZ, n.time, octaves, persistence)

	mod := ensureCurve(n.AmplitudeCurve).Evaluate(tc)
	if n.ScaleByLength {
		mod *= PathLength(points)
	}

	f := frameFor(tangentAt(points, t))
	base := basePoint(points, t)
	return r3.Add(base, r3.Add(
		r3.Add(
			r3.Scale(nx*n.Amplitude.X*mod, f.Normal),
			r3.Scale(ny*n.Amplitude.Y*mod, f.Binormal)),
		r3.Scale(nz*n.Amplitude.Z*mod, f.Tangent)))
}
