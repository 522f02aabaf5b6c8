package adiabatic

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestEvaluateGuessExact(t *testing.T) {
	sim := mustSim(t)

	att, err := EvaluateGuess(sim, 1.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !att.Correct {
		t.Error("guessing the true exponent should be correct")
	}
	if att.ImpliedConstant != sim.ProcessConstant {
		t.Errorf("implied constant %g should equal process constant %g", att.ImpliedConstant, sim.ProcessConstant)
	}
	if len(att.Curve) != 19 {
		t.Errorf("expected 19 curve samples, got %d", len(att.Curve))
	}
}

func TestEvaluateGuessTolerance(t *testing.T) {
	sim := mustSim(t)

	tests := []struct {
		guess   float64
		correct bool
	}{
		{1.45, true},
		{1.35, true},
		{1.31, true},
		{1.6, false},
		{1.0, false},
		// Tolerance is strict <, so exactly 0.1 off is wrong.
		{1.5, false},
	}

	for _, tt := range tests {
		att, err := EvaluateGuess(sim, tt.guess)
		if err != nil {
			t.Fatalf("guess %g: unexpected error: %v", tt.guess, err)
		}
		if att.Correct != tt.correct {
			t.Errorf("guess %g: expected correct=%v, got %v", tt.guess, tt.correct, att.Correct)
		}
	}
}

func TestEvaluateGuessAnchorsAtReferencePoint(t *testing.T) {
	sim := mustSim(t)

	att, err := EvaluateGuess(sim, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The guessed curve must pass through (V0, P0) whatever the guess is.
	var at5 *Sample
	for i := range att.Curve {
		if att.Curve[i].Volume == 5.0 {
			at5 = &att.Curve[i]
			break
		}
	}
	if at5 == nil {
		t.Fatal("guess curve has no sample at the reference volume")
	}
	if relDiff(at5.Pressure, 2.0) > 1e-9 {
		t.Errorf("guess curve should pass through P0=2.0 at V0, got %g", at5.Pressure)
	}
}

func TestEvaluateGuessIdempotent(t *testing.T) {
	sim := mustSim(t)

	a, err := EvaluateGuess(sim, 1.23)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := EvaluateGuess(sim, 1.23)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same state and guess should yield identical attempts")
	}
}

func TestEvaluateGuessDoesNotMutateState(t *testing.T) {
	sim := mustSim(t)
	k := sim.ProcessConstant

	if _, err := EvaluateGuess(sim, 3.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.ProcessConstant != k {
		t.Error("process constant mutated by guess evaluation")
	}
	if sim.Scenario.TrueExponent != 1.4 {
		t.Error("true exponent mutated by guess evaluation")
	}
}

func TestEvaluateGuessNonFinite(t *testing.T) {
	sim := mustSim(t)

	for _, g := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := EvaluateGuess(sim, g); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("guess %g: expected ErrInvalidInput, got %v", g, err)
		}
	}
}

func TestEvaluateGuessOverflowingExponent(t *testing.T) {
	sim := mustSim(t)

	// 5^500 overflows the implied constant; that must surface as the typed
	// overflow error, never as an attempt carrying Inf.
	for _, g := range []float64{500, 5000} {
		if _, err := EvaluateGuess(sim, g); !errors.Is(err, ErrNumericOverflow) {
			t.Errorf("guess %g: expected ErrNumericOverflow, got %v", g, err)
		}
	}
}

func TestEvaluateGuessExtremeButRepresentable(t *testing.T) {
	sim := mustSim(t)

	// 2*5^400 is enormous but still finite; the attempt must come back
	// with every field and sample finite and therefore JSON-encodable.
	att, err := EvaluateGuess(sim, 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if att.Correct {
		t.Error("extreme guess should not be correct")
	}
	if math.IsNaN(att.ImpliedConstant) || math.IsInf(att.ImpliedConstant, 0) {
		t.Fatalf("non-finite implied constant: %g", att.ImpliedConstant)
	}
	for _, s := range att.Curve {
		if math.IsNaN(s.Pressure) || math.IsInf(s.Pressure, 0) {
			t.Fatalf("non-finite pressure leaked at volume %g", s.Volume)
		}
	}
	if _, err := json.Marshal(att); err != nil {
		t.Errorf("attempt not encodable: %v", err)
	}

	// A deeply negative guess underflows the constant to zero instead of
	// overflowing; the curve is just empty.
	att, err = EvaluateGuess(sim, -5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(att.Curve) != 0 {
		t.Errorf("expected empty curve for underflowed constant, got %d samples", len(att.Curve))
	}
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		invalid bool
	}{
		{"1.4", 1.4, false},
		{" 1.45 ", 1.45, false},
		{"-2", -2, false},
		{"abc", 0, true},
		{"", 0, true},
		{"  ", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"1.4.5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseGuess(tt.raw)
		if tt.invalid {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseGuess(%q): expected ErrInvalidInput, got %v", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGuess(%q): unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGuess(%q): expected %g, got %g", tt.raw, tt.want, got)
		}
	}
}
