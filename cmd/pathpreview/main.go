// Path sampler preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/pathpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/pathfx/paths"
	"github.com/pthm-cable/pathfx/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	panelWidth   = 300
)

var variantNames = []string{
	"Line", "Spline", "Arc", "Bounce", "ZigZag",
	"Lightning", "Organic", "Vortex", "Noise", "Wave",
}

// PreviewParams holds the slider-driven sampler parameters.
type PreviewParams struct {
	Variant   int
	Amplitude float32
	Detail    float32
	Frequency float32
	Seed      int64
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Path Sampler Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera{
		Position:   rl.Vector3{X: 6, Y: 5, Z: 10},
		Target:     rl.Vector3{X: 5, Y: 0.5, Z: 0},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	points := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 1, Z: -1},
		{X: 6, Y: 0, Z: 1},
		{X: 10, Y: 0.5, Z: 0},
	}

	params := PreviewParams{
		Variant:   0,
		Amplitude: 0.6,
		Detail:    12,
		Frequency: 3,
		Seed:      42,
	}

	pathRender := renderer.NewPathRenderer(128)
	sampler := buildSampler(params)
	animating := true

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())
		if animating {
			if a, ok := sampler.(paths.Animated); ok {
				a.Advance(dt)
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginMode3D(camera)
		rl.DrawGrid(20, 1)
		pathRender.Draw(sampler, points)
		pathRender.DrawControlPoints(points)
		rl.EndMode3D()

		rl.DrawText(fmt.Sprintf("Variant: %s", variantNames[params.Variant]), 15, 15, 20, rl.DarkGray)

		// Control panel
		panelX := float32(windowWidth - panelWidth - 10)
		panelY := float32(10)
		rebuild := false

		rl.DrawText("Sampler Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Variant selector
		for i, name := range variantNames {
			col := i % 2
			if gui.Button(rl.Rectangle{
				X: panelX + float32(col)*145, Y: panelY, Width: 140, Height: 24,
			}, name) {
				params.Variant = i
				rebuild = true
			}
			if col == 1 {
				panelY += 28
			}
		}
		panelY += 15

		rl.DrawText("Amplitude / Height", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAmp := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0", "3", params.Amplitude, 0, 3,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Amplitude), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.DarkGray)
		if newAmp != params.Amplitude {
			params.Amplitude = newAmp
			rebuild = true
		}
		panelY += 35

		rl.DrawText("Detail / Count", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDetail := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"2", "40", params.Detail, 2, 40,
		)
		rl.DrawText(fmt.Sprintf("%d", int(params.Detail)), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.DarkGray)
		if int(newDetail) != int(params.Detail) {
			params.Detail = newDetail
			rebuild = true
		}
		panelY += 35

		rl.DrawText("Frequency / Rotations", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFreq := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"0.5", "10", params.Frequency, 0.5, 10,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.Frequency), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.DarkGray)
		if newFreq != params.Frequency {
			params.Frequency = newFreq
			rebuild = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Pause", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			rebuild = true
		}

		if rebuild {
			sampler = buildSampler(params)
		}

		rl.EndDrawing()
	}
}

// buildSampler constructs the selected variant from the slider state.
func buildSampler(p PreviewParams) paths.Sampler {
	amp := float64(p.Amplitude)
	detail := int(p.Detail)
	freq := float64(p.Frequency)

	switch p.Variant {
	case 1:
		return &paths.Line{Mode: paths.LineSmooth}
	case 2:
		return &paths.Arc{Height: amp, Bias: 0.5}
	case 3:
		return paths.NewBounce(int(freq), amp, 0.5)
	case 4:
		return paths.NewZigZag(amp, detail, p.Seed)
	case 5:
		return paths.NewLightning(amp, detail, 0.08, p.Seed)
	case 6:
		return paths.NewOrganicWave(amp, detail, p.Seed)
	case 7:
		v := paths.NewVortex(amp, freq)
		v.RotationSpeed = 2
		return v
	case 8:
		return paths.NewNoise(paths.NoiseAmplitude{X: amp, Y: amp, Z: amp * 0.3}, p.Seed)
	case 9:
		return paths.NewWave(amp, freq)
	default:
		return &paths.Line{}
	}
}

func toggleText(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}
