package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/pathfx/config"
	"github.com/pthm-cable/pathfx/engine"
	"github.com/pthm-cable/pathfx/follow"
	"github.com/pthm-cable/pathfx/paths"
	"github.com/pthm-cable/pathfx/renderer"
	"github.com/pthm-cable/pathfx/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	variant := flag.String("variant", "organic", "Path sampler variant (line, arc, bounce, zigzag, lightning, organic, vortex, noise, wave, blend)")
	headless := flag.Bool("headless", false, "Run without graphics")
	sprites := flag.Bool("sprites", false, "Draw particles as billboard sprites instead of points")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	sampler, err := engine.BuildSampler(*variant, cfg, rngSeed)
	if err != nil {
		slog.Error("failed to build sampler", "error", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to open output dir", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	perf := telemetry.NewPerfCollector(cfg.Telemetry.WindowTicks)

	e := engine.New(engine.Options{
		Sampler: sampler,
		Follow: follow.Config{
			Speed:              cfg.Follow.Speed,
			SyncLifetime:       cfg.Follow.SyncLifetime,
			LifetimeVariation:  cfg.Follow.LifetimeVariation,
			MoveEmitterToStart: cfg.Follow.MoveEmitterToStart,
			Range: paths.RangeRemapper{
				Start: cfg.Follow.RangeStart,
				End:   cfg.Follow.RangeEnd,
				Clamp: true,
			},
			Scatter: follow.ScatterConfig{
				Enabled: cfg.Follow.ScatterEnabled,
				Amplitude: paths.NoiseAmplitude{
					X: cfg.Follow.ScatterAmplitude,
					Y: cfg.Follow.ScatterAmplitude,
					Z: cfg.Follow.ScatterAmplitude,
				},
				Frequency: cfg.Follow.ScatterFrequency,
			},
			Seed: rngSeed,
		},
		Seed: rngSeed,
		Perf: perf,
	})
	if err := e.Initialize(); err != nil {
		slog.Error("failed to initialize engine", "error", err)
		os.Exit(1)
	}

	e.UpdatePath([]r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 1, Z: -1},
		{X: 6, Y: 0, Z: 1},
		{X: 10, Y: 0.5, Z: 0},
	})
	e.Play()

	slog.Info("starting effect run",
		"variant", *variant,
		"seed", rngSeed,
		"headless", *headless,
		"max_ticks", *maxTicks,
	)

	dt := cfg.Tick.DT
	logEvery := uint64(cfg.Telemetry.LogEveryTick)

	if *headless {
		for {
			e.Step(dt)
			if logEvery > 0 && e.Tick()%logEvery == 0 {
				stats := perf.Stats()
				stats.LogStats()
				if err := output.WritePerf(e.Tick(), e.Alive(), stats); err != nil {
					slog.Warn("perf write failed", "error", err)
				}
			}
			if *maxTicks > 0 && int(e.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", e.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Path Effect Demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	camera := rl.Camera{
		Position:   rl.Vector3{X: 6, Y: 5, Z: 10},
		Target:     rl.Vector3{X: 5, Y: 0.5, Z: 0},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	pathRender := renderer.NewPathRenderer(128)

	var atlas *renderer.AtlasAnimator
	if *sprites {
		atlas = renderer.NewAtlasAnimator(renderer.GlowSheet(8, 32), 8, 1)
		atlas.Scale = 0.4
	}

	for !rl.WindowShouldClose() {
		e.Step(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(camera)
		rl.DrawGrid(20, 1)
		pathRender.Draw(e.Sampler(), e.Points())
		pathRender.DrawControlPoints(e.Points())
		if atlas != nil {
			e.DrawParticlesAtlas(camera, atlas)
		} else {
			e.DrawParticles()
		}
		rl.EndMode3D()
		rl.DrawFPS(10, 10)
		rl.EndDrawing()

		if logEvery > 0 && e.Tick()%logEvery == 0 {
			stats := perf.Stats()
			stats.LogStats()
			if err := output.WritePerf(e.Tick(), e.Alive(), stats); err != nil {
				slog.Warn("perf write failed", "error", err)
			}
		}
		if *maxTicks > 0 && int(e.Tick()) >= *maxTicks {
			break
		}
	}
}
