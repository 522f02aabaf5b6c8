package adiabatic

import (
	"math"
	"testing"
)

func mustSim(t *testing.T) Simulation {
	t.Helper()
	sim, err := NewSimulation(DefaultScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sim
}

func TestNewSimulationStartsAtReferencePoint(t *testing.T) {
	sim := mustSim(t)

	if sim.Volume != 5.0 {
		t.Errorf("expected initial volume 5.0, got %g", sim.Volume)
	}
	if math.Abs(sim.Pressure-2.0) > 1e-9 {
		t.Errorf("expected initial pressure 2.0, got %g", sim.Pressure)
	}

	// K = P0 * V0^gamma = 2 * 5^1.4
	wantK := 2.0 * math.Pow(5.0, 1.4)
	if sim.ProcessConstant != wantK {
		t.Errorf("expected process constant %g, got %g", wantK, sim.ProcessConstant)
	}
	if math.Abs(wantK-19.03) > 0.01 {
		t.Errorf("process constant should be near 19.03, got %g", wantK)
	}
}

func TestSetVolumeRecomputesPressure(t *testing.T) {
	sim := mustSim(t)

	for v := 1.0; v <= 10.0; v += 0.5 {
		moved, clamped := sim.SetVolume(v)
		if clamped {
			t.Errorf("volume %g should not clamp", v)
		}
		want := sim.ProcessConstant / math.Pow(v, 1.4)
		if relDiff(moved.Pressure, want) > 1e-9 {
			t.Errorf("volume %g: expected pressure %g, got %g", v, want, moved.Pressure)
		}
	}
}

func TestSetVolumeFullExpansion(t *testing.T) {
	sim := mustSim(t)

	moved, _ := sim.SetVolume(10.0)
	if math.Abs(moved.Pressure-0.757) > 0.001 {
		t.Errorf("expected pressure near 0.757 at full expansion, got %g", moved.Pressure)
	}
}

func TestProcessConstantInvariant(t *testing.T) {
	sim := mustSim(t)
	k := sim.ProcessConstant

	for _, v := range []float64{1.0, 9.5, 2.25, 10.0, 5.0, 0.1, 42.0} {
		sim, _ = sim.SetVolume(v)
		if sim.ProcessConstant != k {
			t.Fatalf("process constant changed after SetVolume(%g): %g != %g", v, sim.ProcessConstant, k)
		}
	}
}

func TestSetVolumeClampsToDomain(t *testing.T) {
	sim := mustSim(t)

	tests := []struct {
		in      float64
		want    float64
		clamped bool
	}{
		{5.0, 5.0, false},
		{1.0, 1.0, false},
		{10.0, 10.0, false},
		{0.5, 1.0, true},
		{-3.0, 1.0, true},
		{12.0, 10.0, true},
		{math.NaN(), 1.0, true},
	}

	for _, tt := range tests {
		moved, clamped := sim.SetVolume(tt.in)
		if moved.Volume != tt.want {
			t.Errorf("SetVolume(%g): expected volume %g, got %g", tt.in, tt.want, moved.Volume)
		}
		if clamped != tt.clamped {
			t.Errorf("SetVolume(%g): expected clamped=%v, got %v", tt.in, tt.clamped, clamped)
		}
		if math.IsNaN(moved.Pressure) || math.IsInf(moved.Pressure, 0) {
			t.Errorf("SetVolume(%g): pressure is not finite: %g", tt.in, moved.Pressure)
		}
	}
}

func TestSetVolumeDoesNotMutateReceiver(t *testing.T) {
	sim := mustSim(t)

	_, _ = sim.SetVolume(1.0)
	if sim.Volume != 5.0 {
		t.Errorf("receiver volume mutated: got %g", sim.Volume)
	}
	if math.Abs(sim.Pressure-2.0) > 1e-9 {
		t.Errorf("receiver pressure mutated: got %g", sim.Pressure)
	}
}

func TestGlowIntensity(t *testing.T) {
	sim := mustSim(t)

	// At V0 pressure is 2.0, so the glow channel sits at 80.
	if math.Abs(sim.GlowIntensity()-80.0) > 1e-9 {
		t.Errorf("expected glow 80 at reference point, got %g", sim.GlowIntensity())
	}

	// Full compression pushes pressure past the 255 cap.
	compressed, _ := sim.SetVolume(1.0)
	if compressed.GlowIntensity() != 255 {
		t.Errorf("expected glow capped at 255, got %g", compressed.GlowIntensity())
	}

	expanded, _ := sim.SetVolume(10.0)
	got := expanded.GlowIntensity()
	if got <= 0 || got >= 80 {
		t.Errorf("expected glow between 0 and 80 after expansion, got %g", got)
	}
}

func TestNewSimulationRejectsBadScenario(t *testing.T) {
	bad := []Scenario{
		{InitialVolume: 0, InitialPressure: 2, TrueExponent: 1.4, Tolerance: 0.1, Domain: Domain{1, 10, 0.5}},
		{InitialVolume: 5, InitialPressure: -1, TrueExponent: 1.4, Tolerance: 0.1, Domain: Domain{1, 10, 0.5}},
		{InitialVolume: 5, InitialPressure: 2, TrueExponent: 0, Tolerance: 0.1, Domain: Domain{1, 10, 0.5}},
		{InitialVolume: 5, InitialPressure: 2, TrueExponent: 1.4, Tolerance: 0, Domain: Domain{1, 10, 0.5}},
		{InitialVolume: 5, InitialPressure: 2, TrueExponent: 1.4, Tolerance: 0.1, Domain: Domain{0, 10, 0.5}},
		{InitialVolume: 5, InitialPressure: 2, TrueExponent: 1.4, Tolerance: 0.1, Domain: Domain{10, 1, 0.5}},
		{InitialVolume: 5, InitialPressure: 2, TrueExponent: 1.4, Tolerance: 0.1, Domain: Domain{1, 10, 0}},
		// Overflows the process constant to Inf.
		{InitialVolume: 5, InitialPressure: 2, TrueExponent: 5000, Tolerance: 0.1, Domain: Domain{1, 10, 0.5}},
	}

	for i, s := range bad {
		if _, err := NewSimulation(s); err == nil {
			t.Errorf("scenario %d: expected validation error", i)
		}
	}
}

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}
