package adiabatic

import (
	"fmt"
	"math"
)

// Scenario fixes the constants of one adiabatic process: the reference
// point (V0, P0) the gas starts at, the exponent the player has to
// discover, the tolerance for accepting a guess, and the volume domain
// curves are sampled over.
type Scenario struct {
	InitialVolume   float64 `json:"initial_volume"`
	InitialPressure float64 `json:"initial_pressure"`
	TrueExponent    float64 `json:"true_exponent"`
	Tolerance       float64 `json:"tolerance"`
	Domain          Domain  `json:"domain"`
}

// Domain is the sampled volume range for generated curves.
type Domain struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Step  float64 `json:"step"`
}

// DefaultScenario returns the diatomic-gas scenario: P=2 atm, V=5 L,
// gamma=1.4, volumes sampled from 1 to 10 L every 0.5 L.
func DefaultScenario() Scenario {
	return Scenario{
		InitialVolume:   5.0,
		InitialPressure: 2.0,
		TrueExponent:    1.4,
		Tolerance:       0.1,
		Domain:          Domain{Start: 1.0, End: 10.0, Step: 0.5},
	}
}

// Validate checks that the scenario describes a physically meaningful
// process with a sampleable domain.
func (s Scenario) Validate() error {
	if s.InitialVolume <= 0 {
		return fmt.Errorf("%w: initial volume must be positive, got %g", ErrBadScenario, s.InitialVolume)
	}
	if s.InitialPressure <= 0 {
		return fmt.Errorf("%w: initial pressure must be positive, got %g", ErrBadScenario, s.InitialPressure)
	}
	if s.TrueExponent <= 0 {
		return fmt.Errorf("%w: exponent must be positive, got %g", ErrBadScenario, s.TrueExponent)
	}
	if s.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrBadScenario, s.Tolerance)
	}
	if k := s.InitialPressure * math.Pow(s.InitialVolume, s.TrueExponent); math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("%w: process constant is not representable", ErrBadScenario)
	}
	return s.Domain.validate()
}

func (d Domain) validate() error {
	if d.Start <= 0 {
		return fmt.Errorf("%w: domain start must be positive, got %g", ErrBadScenario, d.Start)
	}
	if d.End <= d.Start {
		return fmt.Errorf("%w: domain end %g must exceed start %g", ErrBadScenario, d.End, d.Start)
	}
	if d.Step <= 0 {
		return fmt.Errorf("%w: domain step must be positive, got %g", ErrBadScenario, d.Step)
	}
	return nil
}
