package paths

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Perlin generates coherent noise from a seeded permutation table. Two
// instances built from the same seed produce identical values.
type Perlin struct {
	perm [512]int
}

// NewPerlin creates a seeded Perlin noise generator.
func NewPerlin(seed int64) *Perlin {
	p := &Perlin{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}
	return p
}

// Noise3D returns a noise value in roughly [-1, 1] for 3D coordinates.
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	A := p.perm[X] + Y
	AA := p.perm[A] + Z
	AB := p.perm[A+1] + Z
	B := p.perm[X+1] + Y
	BA := p.perm[B] + Z
	BB := p.perm[B+1] + Z

	return lerp(
		lerp(
			lerp(grad3D(p.perm[AA], x, y, z), grad3D(p.perm[BA], x-1, y, z), u),
			lerp(grad3D(p.perm[AB], x, y-1, z), grad3D(p.perm[BB], x-1, y-1, z), u),
			v),
		lerp(
			lerp(grad3D(p.perm[AA+1], x, y, z-1), grad3D(p.perm[BA+1], x-1, y, z-1), u),
			lerp(grad3D(p.perm[AB+1], x, y-1, z-1), grad3D(p.perm[BB+1], x-1, y-1, z-1), u),
			v),
		w)
}

// Noise2D returns a noise value for 2D coordinates.
func (p *Perlin) Noise2D(x, y float64) float64 {
	return p.Noise3D(x, y, 0)
}

// Octave3D sums octaves of Noise3D with frequency doubling and
// amplitude falloff per octave, normalized back to roughly [-1, 1].
func (p *Perlin) Octave3D(x, y, z float64, octaves int, persistence float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var total, amplitude, maxValue float64
	amplitude = 1
	frequency := 1.0
	for o := 0; o < octaves; o++ {
		total += p.Noise3D(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func grad3D(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// NoiseSource bundles the seeded generators the animated variants draw
// from: simplex noise for smoothly varying offset angles and a plain RNG
// for per-regeneration jitter. Reseeding restores the exact draw
// sequence, so two instances with the same seed and the same Advance
// history produce identical patterns.
type NoiseSource struct {
	seed    int64
	rng     *rand.Rand
	simplex opensimplex.Noise
}

// NewNoiseSource creates a deterministic noise source.
func NewNoiseSource(seed int64) *NoiseSource {
	return &NoiseSource{
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		simplex: opensimplex.New(seed),
	}
}

// Reseed re-derives both generators from the new seed.
func (n *NoiseSource) Reseed(seed int64) {
	n.seed = seed
	n.rng = rand.New(rand.NewSource(seed))
	n.simplex = opensimplex.New(seed)
}

// Seed returns the seed the source was last derived from.
func (n *NoiseSource) Seed() int64 { return n.seed }

// Angle returns a coherent angle in radians for pattern index i at the
// given phase. Nearby indices produce correlated angles; advancing the
// phase drifts them smoothly.
func (n *NoiseSource) Angle(i int, phase float64) float64 {
	return n.simplex.Eval2(float64(i)*0.731, phase) * math.Pi
}

// Jitter returns the next uniform draw in [-1, 1].
func (n *NoiseSource) Jitter() float64 {
	return n.rng.Float64()*2 - 1
}

// UnitJitter returns the next uniform draw in [0, 1].
func (n *NoiseSource) UnitJitter() float64 {
	return n.rng.Float64()
}
