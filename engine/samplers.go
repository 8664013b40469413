package engine

import (
	"fmt"

	"github.com/pthm-cable/pathfx/config"
	"github.com/pthm-cable/pathfx/paths"
)

// BuildSampler constructs a path sampler variant by name from the
// loaded configuration. The "blend" variant composes the line and wave
// samplers over the middle of the path as a demonstration pair.
func BuildSampler(name string, cfg *config.Config, seed int64) (paths.Sampler, error) {
	s := cfg.Samplers
	switch name {
	case "line":
		mode := paths.LineSegmented
		if s.Line.Smooth {
			mode = paths.LineSmooth
		}
		return &paths.Line{Mode: mode, Tension: s.Line.Tension}, nil

	case "arc":
		return &paths.Arc{
			Height:     s.Arc.Height,
			Bias:       s.Arc.Bias,
			PerSegment: s.Arc.PerSegment,
		}, nil

	case "bounce":
		return paths.NewBounce(s.Bounce.Count, s.Bounce.Height, s.Bounce.Damping), nil

	case "zigzag":
		z := paths.NewZigZag(s.ZigZag.Amplitude, s.ZigZag.Detail, seed)
		z.Randomness = s.ZigZag.Randomness
		z.AdaptiveDetail = s.ZigZag.AdaptiveDetail
		z.SegmentsPerUnit = s.ZigZag.SegmentsPerUnit
		return z, nil

	case "lightning":
		l := paths.NewLightning(s.Lightning.Amplitude, s.Lightning.Detail, s.Lightning.StrobeFrequency, seed)
		l.Jaggedness = s.Lightning.Jaggedness
		return l, nil

	case "organic":
		o := paths.NewOrganicWave(s.Organic.Amplitude, s.Organic.Detail, seed)
		o.FlowAmount = s.Organic.FlowAmount
		o.TargetInterval = s.Organic.TargetInterval
		o.MicroMotion = s.Organic.MicroMotion
		return o, nil

	case "vortex":
		v := paths.NewVortex(s.Vortex.StartRadius, s.Vortex.Rotations)
		v.EndRadius = s.Vortex.EndRadius
		v.RotationSpeed = s.Vortex.RotationSpeed
		v.AdaptRotations = s.Vortex.AdaptRotations
		return v, nil

	case "noise":
		n := paths.NewNoise(paths.NoiseAmplitude{
			X: s.Noise.Amplitude,
			Y: s.Noise.Amplitude,
			Z: s.Noise.Amplitude * 0.3,
		}, seed)
		n.Frequency = s.Noise.Frequency
		n.Octaves = s.Noise.Octaves
		n.Persistence = s.Noise.Persistence
		n.Speed = s.Noise.Speed
		return n, nil

	case "wave":
		w := paths.NewWave(s.Wave.Amplitude, s.Wave.Frequency)
		w.ContinuousPhase = s.Wave.ContinuousPhase
		return w, nil

	case "blend":
		a := &paths.Line{Mode: paths.LineSmooth}
		b := paths.NewWave(s.Wave.Amplitude, s.Wave.Frequency)
		return paths.NewBlend(a, b, 0.3, 0.7)

	default:
		return nil, fmt.Errorf("unknown sampler variant %q", name)
	}
}
