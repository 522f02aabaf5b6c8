// Package adiabatic implements the physics core of the adiabatic-process
// mini-game: a gas on a fixed adiabat P*V^gamma = K, whose pressure is a
// pure function of volume, plus curve sampling and guess evaluation. The
// package has no rendering or timing behavior; a display surface calls
// these functions and draws the results.
package adiabatic

import "math"

// Simulation is the state of one adiabatic process. The process constant
// K = P0 * V0^gamma is derived once from the scenario and never changes;
// it encodes which adiabat the gas is on. Pressure is always recomputed
// from volume, never stored independently.
type Simulation struct {
	Scenario Scenario `json:"scenario"`

	Volume   float64 `json:"volume"`
	Pressure float64 `json:"pressure"`

	// ProcessConstant is P0 * V0^gamma, fixed at creation.
	ProcessConstant float64 `json:"process_constant"`
}

// NewSimulation creates a simulation at the scenario's reference point.
func NewSimulation(s Scenario) (Simulation, error) {
	if err := s.Validate(); err != nil {
		return Simulation{}, err
	}
	k := s.InitialPressure * math.Pow(s.InitialVolume, s.TrueExponent)
	sim := Simulation{
		Scenario:        s,
		ProcessConstant: k,
	}
	sim, _ = sim.SetVolume(s.InitialVolume)
	return sim, nil
}

// SetVolume moves the gas along its adiabat and recomputes pressure.
// Volumes outside the scenario domain are clamped to the nearest bound;
// the returned bool reports whether clamping happened. The receiver is
// not mutated.
func (sim Simulation) SetVolume(v float64) (Simulation, bool) {
	clamped := false
	if v < sim.Scenario.Domain.Start || math.IsNaN(v) {
		v = sim.Scenario.Domain.Start
		clamped = true
	} else if v > sim.Scenario.Domain.End {
		v = sim.Scenario.Domain.End
		clamped = true
	}
	sim.Volume = v
	sim.Pressure = sim.ProcessConstant / math.Pow(v, sim.Scenario.TrueExponent)
	return sim, clamped
}

// GlowIntensity maps pressure to the 0..255 heat-glow channel used by the
// compression visual. Compression raises pressure and the gas glows redder.
func (sim Simulation) GlowIntensity() float64 {
	return math.Min(255, math.Max(0, sim.Pressure*40))
}

// TrueCurve samples the adiabat the gas is actually on.
func (sim Simulation) TrueCurve() []Sample {
	return GenerateCurve(sim.Scenario.TrueExponent, sim.ProcessConstant, sim.Scenario.Domain)
}
