package paths

import "math"

// Offset2 is a lateral displacement in a path-local 2D plane: X along
// the primary (up-ish) offset axis, Y along the side axis.
type Offset2 struct {
	X, Y float64
}

func (o Offset2) Scale(f float64) Offset2 {
	return Offset2{X: o.X * f, Y: o.Y * f}
}

func (o Offset2) Add(p Offset2) Offset2 {
	return Offset2{X: o.X + p.X, Y: o.Y + p.Y}
}

func lerpOffset(a, b Offset2, t float64) Offset2 {
	return Offset2{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}

// zigzagOffsets fills an offset array with alternating-sign unit
// magnitudes jittered by randomness. First and last entries stay zero
// so the path passes exactly through its end control points.
func zigzagOffsets(src *NoiseSource, detail int, randomness float64) []Offset2 {
	offsets := make([]Offset2, detail+1)
	sign := 1.0
	for i := 1; i < detail; i++ {
		mag := 1 + randomness*src.Jitter()
		offsets[i] = Offset2{X: sign * mag}
		sign = -sign
	}
	return offsets
}

// noiseAngleOffsets fills an offset array from coherent noise angles
// plus jitter magnitude. The side component is damped so dense patterns
// do not knot back through themselves. Endpoints stay zero.
func noiseAngleOffsets(src *NoiseSource, detail int, jaggedness, phase float64) []Offset2 {
	const sideDamping = 0.3
	offsets := make([]Offset2, detail+1)
	for i := 1; i < detail; i++ {
		angle := src.Angle(i, phase) + src.Jitter()*0.5
		mag := jaggedness * (0.5 + 0.5*src.UnitJitter())
		offsets[i] = Offset2{
			X: math.Cos(angle) * mag,
			Y: math.Sin(angle) * mag * sideDamping,
		}
	}
	return offsets
}

// sampleOffsets interpolates an offset array at parameter t using the
// supplied blend shape (nil blends linearly). The array is indexed
// proportionally: t=0 maps to the first entry, t=1 to the last.
func sampleOffsets(offsets []Offset2, t float64, blend func(float64) float64) Offset2 {
	n := len(offsets)
	if n == 0 {
		return Offset2{}
	}
	if n == 1 {
		return offsets[0]
	}
	scaled := clamp01(t) * float64(n-1)
	i := int(math.Floor(scaled))
	if i > n-2 {
		i = n - 2
	}
	u := scaled - float64(i)
	if blend != nil {
		u = blend(u)
	}
	return lerpOffset(offsets[i], offsets[i+1], u)
}

// nearestOffset snaps to the closest array entry, producing hard corners.
func nearestOffset(offsets []Offset2, t float64) Offset2 {
	n := len(offsets)
	if n == 0 {
		return Offset2{}
	}
	i := int(math.Round(clamp01(t) * float64(n-1)))
	return offsets[i]
}
