// Package config provides configuration loading and access for the
// path-effect demo and the preview tools.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect and demo parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Tick      TickConfig      `yaml:"tick"`
	Emitter   EmitterConfig   `yaml:"emitter"`
	Follow    FollowConfig    `yaml:"follow"`
	Samplers  SamplersConfig  `yaml:"samplers"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings for the graphics run loop.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// TickConfig holds simulation stepping parameters.
type TickConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// EmitterConfig holds demo particle emission parameters.
type EmitterConfig struct {
	Rate         float64 `yaml:"rate"`          // particles per second
	MaxParticles int     `yaml:"max_particles"` // hard cap on the live set
	Lifetime     float64 `yaml:"lifetime"`      // seconds, unless synced to path length
	Spread       float64 `yaml:"spread"`        // spawn jitter radius
}

// FollowConfig holds path-follow override parameters.
type FollowConfig struct {
	Speed              float64 `yaml:"speed"`              // world units per second for lifetime syncing
	SyncLifetime       bool    `yaml:"sync_lifetime"`      // derive lifetime from path length / speed
	LifetimeVariation  float64 `yaml:"lifetime_variation"` // +- seconds applied to the derived lifetime
	MoveEmitterToStart bool    `yaml:"move_emitter_to_start"`
	RangeStart         float64 `yaml:"range_start"` // sub-range of the path to traverse
	RangeEnd           float64 `yaml:"range_end"`
	ScatterEnabled     bool    `yaml:"scatter_enabled"`
	ScatterAmplitude   float64 `yaml:"scatter_amplitude"`
	ScatterFrequency   float64 `yaml:"scatter_frequency"`
	Seed               int64   `yaml:"seed"`
}

// SamplersConfig holds per-variant defaults used by the demo and the
// preview tool.
type SamplersConfig struct {
	Line      LineConfig      `yaml:"line"`
	Arc       ArcConfig       `yaml:"arc"`
	Bounce    BounceConfig    `yaml:"bounce"`
	ZigZag    ZigZagConfig    `yaml:"zigzag"`
	Lightning LightningConfig `yaml:"lightning"`
	Organic   OrganicConfig   `yaml:"organic"`
	Vortex    VortexConfig    `yaml:"vortex"`
	Noise     NoiseConfig     `yaml:"noise"`
	Wave      WaveConfig      `yaml:"wave"`
}

// LineConfig holds Line/Spline defaults.
type LineConfig struct {
	Smooth  bool    `yaml:"smooth"`
	Tension float64 `yaml:"tension"`
}

// ArcConfig holds Arc defaults.
type ArcConfig struct {
	Height     float64 `yaml:"height"`
	Bias       float64 `yaml:"bias"`
	PerSegment bool    `yaml:"per_segment"`
}

// BounceConfig holds Bounce defaults.
type BounceConfig struct {
	Count   int     `yaml:"count"`
	Height  float64 `yaml:"height"`
	Damping float64 `yaml:"damping"` // per-bounce geometric decay
}

// ZigZagConfig holds ZigZag defaults.
type ZigZagConfig struct {
	Amplitude       float64 `yaml:"amplitude"`
	Randomness      float64 `yaml:"randomness"`
	Detail          int     `yaml:"detail"`
	AdaptiveDetail  bool    `yaml:"adaptive_detail"`
	SegmentsPerUnit float64 `yaml:"segments_per_unit"`
}

// LightningConfig holds Lightning defaults.
type LightningConfig struct {
	Amplitude       float64 `yaml:"amplitude"`
	Jaggedness      float64 `yaml:"jaggedness"`
	Detail          int     `yaml:"detail"`
	StrobeFrequency float64 `yaml:"strobe_frequency"` // seconds between regenerations
}

// OrganicConfig holds OrganicWave defaults.
type OrganicConfig struct {
	Amplitude      float64 `yaml:"amplitude"`
	Detail         int     `yaml:"detail"`
	FlowAmount     float64 `yaml:"flow_amount"`
	TargetInterval float64 `yaml:"target_interval"`
	MicroMotion    float64 `yaml:"micro_motion"`
}

// VortexConfig holds Vortex defaults.
type VortexConfig struct {
	StartRadius    float64 `yaml:"start_radius"`
	EndRadius      float64 `yaml:"end_radius"`
	Rotations      float64 `yaml:"rotations"`
	RotationSpeed  float64 `yaml:"rotation_speed"`
	AdaptRotations bool    `yaml:"adapt_rotations"`
}

// NoiseConfig holds Noise sampler defaults.
type NoiseConfig struct {
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"` // amplitude falloff per octave
	Speed       float64 `yaml:"speed"`
}

// WaveConfig holds Wave defaults.
type WaveConfig struct {
	Amplitude       float64 `yaml:"amplitude"`
	Frequency       float64 `yaml:"frequency"`
	ContinuousPhase bool    `yaml:"continuous_phase"`
}

// TelemetryConfig holds perf tracking parameters.
type TelemetryConfig struct {
	WindowTicks  int `yaml:"window_ticks"`  // rolling perf window size
	LogEveryTick int `yaml:"log_every_tick"` // emit stats every N ticks (0 = never)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
