package paths

import "gonum.org/v1/gonum/spatial/r3"

// curvedLengthSamples is the fixed polyline resolution used to estimate
// the length of a curved sampler. Sampling the variant itself at a fixed
// count avoids recursing into its own length-dependent scaling.
const curvedLengthSamples = 20

// PathLength returns the exact sum of segment distances of a polyline.
func PathLength(points []r3.Vec) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += r3.Norm(r3.Sub(points[i], points[i-1]))
	}
	return total
}

// ChordLength returns the straight-line distance from first to last point.
func ChordLength(points []r3.Vec) float64 {
	if len(points) < 2 {
		return 0
	}
	return r3.Norm(r3.Sub(points[len(points)-1], points[0]))
}

// SampledLength approximates the length of the curve produced by s over
// the given points, using a fixed number of evenly spaced samples.
func SampledLength(s Sampler, points []r3.Vec) float64 {
	if len(points) < 2 {
		return 0
	}
	var total float64
	prev := s.CalculatePointOnPath(points, 0)
	for i := 1; i <= curvedLengthSamples; i++ {
		t := float64(i) / curvedLengthSamples
		cur := s.CalculatePointOnPath(points, t)
		total += r3.Norm(r3.Sub(cur, prev))
		prev = cur
	}
	return total
}

// distanceTraveled returns the true geometric distance covered when the
// index-proportional parameterization has advanced to t. Used by Wave's
// continuous phase mode so wavelength stays consistent across unevenly
// spaced control points.
func distanceTraveled(points []r3.Vec, t float64) float64 {
	i, u := segmentAt(points, t)
	var total float64
	for k := 0; k < i; k++ {
		total += r3.Norm(r3.Sub(points[k+1], points[k]))
	}
	return total + u*r3.Norm(r3.Sub(points[i+1], points[i]))
}
