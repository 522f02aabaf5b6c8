// Package session carries one player's game state between calls into the
// adiabatic core. Each connected client owns exactly one session; sessions
// never share state and live only in memory.
package session

import (
	"errors"
	"sync"

	"periodictutor/internal/adiabatic"
)

// Phase is the stage a session is in. The introduction only allows volume
// exploration; advancing unlocks guess submission. The transition is
// one-way and a correct guess does not end the guessing phase.
type Phase string

const (
	PhaseIntroduction Phase = "introduction"
	PhaseGuessing     Phase = "guessing"
)

var (
	// ErrWrongPhase is returned for a guess submitted before the session
	// advanced out of the introduction.
	ErrWrongPhase = errors.New("guessing is not unlocked yet")

	// ErrNotFound is returned by the manager for an unknown session ID.
	ErrNotFound = errors.New("session not found")
)

// Session is one client's game. A mutex guards it because the HTTP surface
// may deliver slider updates and guesses concurrently for the same ID.
type Session struct {
	ID string

	mu      sync.Mutex
	sim     adiabatic.Simulation
	phase   Phase
	attempt *adiabatic.Attempt
}

// New creates a session at the scenario's reference point, in the
// introduction phase.
func New(id string, scenario adiabatic.Scenario) (*Session, error) {
	sim, err := adiabatic.NewSimulation(scenario)
	if err != nil {
		return nil, err
	}
	return &Session{ID: id, sim: sim, phase: PhaseIntroduction}, nil
}

// Snapshot is the session state handed to a display surface. The true
// exponent stays out of it; the player discovers that by playing.
type Snapshot struct {
	ID       string             `json:"id"`
	Phase    Phase              `json:"phase"`
	Volume   float64            `json:"volume"`
	Pressure float64            `json:"pressure"`
	Glow     float64            `json:"glow"`
	Curve    []adiabatic.Sample `json:"curve"`
	Attempt  *adiabatic.Attempt `json:"attempt,omitempty"`
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:       s.ID,
		Phase:    s.phase,
		Volume:   s.sim.Volume,
		Pressure: s.sim.Pressure,
		Glow:     s.sim.GlowIntensity(),
		Curve:    s.sim.TrueCurve(),
		Attempt:  s.attempt,
	}
}

// SetVolume moves the piston. Out-of-range volumes clamp to the domain;
// the returned bool reports clamping so the surface can flag it.
func (s *Session) SetVolume(v float64) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var clamped bool
	s.sim, clamped = s.sim.SetVolume(v)
	return s.snapshotLocked(), clamped
}

// Advance moves the session into the guessing phase. Advancing an already
// advanced session is a no-op; there is no way back.
func (s *Session) Advance() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseGuessing
	return s.snapshotLocked()
}

// Guess evaluates a raw exponent guess. Only the latest attempt is kept;
// sessions hold no guess history.
func (s *Session) Guess(raw string) (adiabatic.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseGuessing {
		return adiabatic.Attempt{}, ErrWrongPhase
	}
	guess, err := adiabatic.ParseGuess(raw)
	if err != nil {
		return adiabatic.Attempt{}, err
	}
	att, err := adiabatic.EvaluateGuess(s.sim, guess)
	if err != nil {
		return adiabatic.Attempt{}, err
	}
	s.attempt = &att
	return att, nil
}
