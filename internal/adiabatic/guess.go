package adiabatic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Attempt is the outcome of one exponent guess. The guessed curve is
// anchored at the scenario's reference point: the implied constant is what
// K would have to be if the guess were the real exponent, so the guessed
// curve and the true curve always cross at (V0, P0) and the player can
// compare their shapes.
type Attempt struct {
	GuessedExponent float64  `json:"guessed_exponent"`
	ImpliedConstant float64  `json:"implied_constant"`
	Curve           []Sample `json:"curve"`
	Correct         bool     `json:"correct"`
}

// ParseGuess converts raw user input into an exponent. Unparseable input
// and non-finite values yield ErrInvalidInput.
func ParseGuess(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	g, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	return g, nil
}

// EvaluateGuess classifies a guessed exponent against the simulation's true
// exponent and generates the comparison curve. Correctness is strict:
// |guess - gamma| < tolerance, so a guess off by exactly the tolerance is
// wrong. Pure function of its inputs; the simulation is never mutated, and
// a correct guess does not stop further guessing.
func EvaluateGuess(sim Simulation, guess float64) (Attempt, error) {
	if math.IsNaN(guess) || math.IsInf(guess, 0) {
		return Attempt{}, fmt.Errorf("%w: non-finite exponent", ErrInvalidInput)
	}
	s := sim.Scenario
	k := s.InitialPressure * math.Pow(s.InitialVolume, guess)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return Attempt{}, fmt.Errorf("%w: exponent %g", ErrNumericOverflow, guess)
	}
	return Attempt{
		GuessedExponent: guess,
		ImpliedConstant: k,
		Curve:           GenerateCurve(guess, k, s.Domain),
		Correct:         math.Abs(guess-s.TrueExponent) < s.Tolerance,
	}, nil
}
