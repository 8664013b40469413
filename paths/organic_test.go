package paths

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestOrganicWaveEndpointsPinnedEveryTick(t *testing.T) {
	points := []r3.Vec{{}, {X: 2, Y: 1}, {X: 5}}

	o := NewOrganicWave(0.7, 10, 5)
	o.OnPathChanged(points)
	for step := 0; step < 120; step++ {
		o.Advance(1.0 / 60)
		approxVec(t, o.CalculatePointOnPath(points, 0), points[0], 1e-9)
		approxVec(t, o.CalculatePointOnPath(points, 1), points[2], 1e-9)
	}
}

func TestOrganicWaveDeterminism(t *testing.T) {
	points := []r3.Vec{{}, {X: 4, Y: 2}, {X: 8}}

	a := NewOrganicWave(0.7, 8, 41)
	b := NewOrganicWave(0.7, 8, 41)

	for step := 0; step < 90; step++ {
		a.Advance(1.0 / 60)
		b.Advance(1.0 / 60)
	}
	for _, tt := range []float64{0.25, 0.5, 0.75} {
		pa := a.CalculatePointOnPath(points, tt)
		pb := b.CalculatePointOnPath(points, tt)
		if pa != pb {
			t.Errorf("t=%v: expected identical drift for identical seeds, got %+v vs %+v", tt, pa, pb)
		}
	}
}

func TestOrganicWaveDriftsContinuously(t *testing.T) {
	points := []r3.Vec{{}, {X: 8}}

	o := NewOrganicWave(0.7, 8, 7)
	o.Advance(1.0 / 60)
	prev := o.CalculatePointOnPath(points, 0.5)

	var maxStep float64
	moved := false
	for step := 0; step < 180; step++ {
		o.Advance(1.0 / 60)
		cur := o.CalculatePointOnPath(points, 0.5)
		if d := r3.Norm(r3.Sub(cur, prev)); d > 0 {
			moved = true
			if d > maxStep {
				maxStep = d
			}
		}
		prev = cur
	}
	if !moved {
		t.Fatal("expected the pattern to drift over time")
	}
	// Spring-damped chasing moves smoothly, never strobe-jumping.
	if maxStep > 0.2 {
		t.Errorf("expected continuous drift, saw per-tick jump of %v", maxStep)
	}
}

func TestOrganicWaveSpringStepTracksTick(t *testing.T) {
	o := NewOrganicWave(0.7, 8, 3)

	o.Advance(1.0 / 30)
	if o.springDT != 1.0/30 {
		t.Fatalf("expected spring step 1/30, got %v", o.springDT)
	}

	// A caller switching tick rates gets a spring rebuilt at the new step.
	o.Advance(1.0 / 120)
	if o.springDT != 1.0/120 {
		t.Errorf("expected spring step 1/120 after rate change, got %v", o.springDT)
	}

	// A zero step is a no-op tick and keeps the last spring.
	o.Advance(0)
	if o.springDT != 1.0/120 {
		t.Errorf("expected spring step unchanged by zero dt, got %v", o.springDT)
	}
}

func TestOrganicWaveSetSeedRestartsPattern(t *testing.T) {
	points := []r3.Vec{{}, {X: 8}}

	o := NewOrganicWave(0.7, 8, 1)
	for step := 0; step < 60; step++ {
		o.Advance(1.0 / 60)
	}
	before := o.CalculatePointOnPath(points, 0.5)

	o.SetSeed(2)
	o.Advance(1.0 / 60)
	after := o.CalculatePointOnPath(points, 0.5)
	if before == after {
		t.Error("expected a different pattern after reseeding")
	}
}
