package adiabatic

import "errors"

var (
	// ErrInvalidInput marks a guess that did not parse as a number. Callers
	// distinguish it from a wrong-but-valid guess so the surface can say
	// "enter a number" instead of "not quite".
	ErrInvalidInput = errors.New("guess is not a number")

	// ErrBadScenario marks scenario constants that describe no physical
	// process (non-positive pressure, volume, exponent or step).
	ErrBadScenario = errors.New("invalid scenario")

	// ErrNumericOverflow marks a guess whose implied constant is not
	// representable: exponents far outside any physical range overflow
	// the power function, and Inf must never reach a consumer.
	ErrNumericOverflow = errors.New("guess overflows the process constant")
)
