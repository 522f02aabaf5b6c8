package api

import (
	"periodictutor/internal/adiabatic"
	"periodictutor/internal/elements"
	"periodictutor/internal/session"
)

// APIError represents a structured error response with context.
type APIError struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	return e.Message
}

// Error types. invalid_input is deliberately distinct from an incorrect
// guess: an unparseable exponent is a 400 of this type, a wrong-but-valid
// guess is a 200 whose attempt has correct=false.
const (
	ErrTypeInvalidInput    = "invalid_input"
	ErrTypeNumericOverflow = "numeric_overflow"
	ErrTypeValidation      = "validation_error"
	ErrTypeWrongPhase      = "wrong_phase"
	ErrTypeSessionNotFound = "session_not_found"
	ErrTypeElementNotFound = "element_not_found"
	ErrTypeInternal        = "internal_error"
)

// CreateSessionRequest optionally overrides scenario constants for the new
// session. Absent fields keep the server defaults.
type CreateSessionRequest struct {
	InitialVolume   *float64 `json:"initial_volume,omitempty"`
	InitialPressure *float64 `json:"initial_pressure,omitempty"`
	TrueExponent    *float64 `json:"true_exponent,omitempty"`
	Tolerance       *float64 `json:"tolerance,omitempty"`
	DomainStart     *float64 `json:"domain_start,omitempty"`
	DomainEnd       *float64 `json:"domain_end,omitempty"`
	DomainStep      *float64 `json:"domain_step,omitempty"`
}

// Apply overlays the overrides onto a base scenario.
func (r CreateSessionRequest) Apply(s adiabatic.Scenario) adiabatic.Scenario {
	if r.InitialVolume != nil {
		s.InitialVolume = *r.InitialVolume
	}
	if r.InitialPressure != nil {
		s.InitialPressure = *r.InitialPressure
	}
	if r.TrueExponent != nil {
		s.TrueExponent = *r.TrueExponent
	}
	if r.Tolerance != nil {
		s.Tolerance = *r.Tolerance
	}
	if r.DomainStart != nil {
		s.Domain.Start = *r.DomainStart
	}
	if r.DomainEnd != nil {
		s.Domain.End = *r.DomainEnd
	}
	if r.DomainStep != nil {
		s.Domain.Step = *r.DomainStep
	}
	return s
}

// SessionResponse wraps a session snapshot.
type SessionResponse struct {
	Session    session.Snapshot `json:"session"`
	AppVersion string           `json:"app_version"`
}

// SetVolumeRequest moves the piston.
type SetVolumeRequest struct {
	Volume float64 `json:"volume"`
}

// SetVolumeResponse reports the state after the move and whether the
// requested volume was clamped into the domain.
type SetVolumeResponse struct {
	Session    session.Snapshot `json:"session"`
	Clamped    bool             `json:"clamped"`
	AppVersion string           `json:"app_version"`
}

// GuessRequest submits an exponent guess. The exponent may arrive as a
// JSON number or as the raw string from an input box; unparseable strings
// surface as invalid_input.
type GuessRequest struct {
	Exponent any `json:"exponent"`
}

// GuessResponse reports the evaluated attempt. Feedback mirrors the
// reference game's two messages and is derived from the attempt, never
// stored.
type GuessResponse struct {
	Attempt    adiabatic.Attempt `json:"attempt"`
	Feedback   string            `json:"feedback"`
	AppVersion string            `json:"app_version"`
}

// ElementsResponse lists element records.
type ElementsResponse struct {
	Elements   []elements.Element `json:"elements"`
	Count      int                `json:"count"`
	AppVersion string             `json:"app_version"`
}

// ElementResponse wraps a single element lookup.
type ElementResponse struct {
	Element    elements.Element `json:"element"`
	AppVersion string           `json:"app_version"`
}

// AlphabetResponse buckets elements by first letter for the letter game.
type AlphabetResponse struct {
	Groups     map[string][]elements.Element `json:"groups"`
	AppVersion string                        `json:"app_version"`
}
