package paths

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Wave applies a sinusoidal perpendicular offset. Phase is either
// proportional to t, or, in continuous mode, to the true geometric
// distance traveled so far over the total path length — that keeps the
// visual wavelength consistent across unevenly spaced control points,
// while the base position itself still uses index-proportional
// segmentation.
type Wave struct {
	Amplitude       float64
	Frequency       float64
	ContinuousPhase bool
	ScaleAmpByLen   bool
	ScaleFreqByLen  bool
	AmplitudeCurve  Curve
}

// NewWave returns a wave faded out at the path endpoints.
func NewWave(amplitude, frequency float64) *Wave {
	return &Wave{
		Amplitude:      amplitude,
		Frequency:      frequency,
		AmplitudeCurve: EndpointEnvelope(),
	}
}

func (w *Wave) CalculatePointOnPath(points []r3.Vec, t float64) r3.Vec {
	if !checkPoints("wave", points) {
		return r3.Vec{}
	}
	tc := clamp01(t)

	frequency := w.Frequency
	amplitude := w.Amplitude
	if w.ScaleFreqByLen || w.ScaleAmpByLen {
		length := PathLength(points)
		if w.ScaleFreqByLen {
			frequency *= length
		}
		if w.ScaleAmpByLen {
			amplitude *= length
		}
	}

	progress := tc
	if w.ContinuousPhase {
		if total := PathLength(points); total > 1e-9 {
			progress = distanceTraveled(points, tc) / total
		}
	}
	phase := progress * frequency * 2 * math.Pi

	offset := amplitude * ensureCurve(w.AmplitudeCurve).Evaluate(tc) * math.Sin(phase)
	base := basePoint(points, t)
	return r3.Add(base, r3.Scale(offset, offsetAxis(pathTangent(points))))
}
