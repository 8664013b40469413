package paths

// RangeRemapper maps a normalized input onto a [Start, End] sub-range of
// a path, so a consumer can restrict sampling to a portion of it.
// Start may exceed End to traverse the range backwards.
type RangeRemapper struct {
	Start float64
	End   float64
	Clamp bool
}

// FullRange covers the whole path.
var FullRange = RangeRemapper{Start: 0, End: 1}

// Remap converts t into the configured sub-range.
func (r RangeRemapper) Remap(t float64) float64 {
	if r.Clamp {
		t = clamp01(t)
	}
	return r.Start + t*(r.End-r.Start)
}
