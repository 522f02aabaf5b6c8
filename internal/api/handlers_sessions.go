package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"periodictutor/internal/adiabatic"
	"periodictutor/internal/session"
)

// handleCreateSession starts a new game session. The body may override
// scenario constants; an empty body plays the default game.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "Invalid JSON body", nil)
		return
	}

	scenario := req.Apply(s.scenario)
	sess, err := s.sessions.Create(scenario)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, err.Error(), nil)
		return
	}

	s.writeJSON(w, http.StatusCreated, SessionResponse{
		Session:    sess.Snapshot(),
		AppVersion: AppVersion,
	})
}

// handleGetSession returns the current snapshot of a session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, SessionResponse{
		Session:    sess.Snapshot(),
		AppVersion: AppVersion,
	})
}

// handleDeleteSession drops a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleSetVolume moves the piston. Out-of-domain volumes are clamped and
// reported, not rejected; the physical model is defined at the bounds.
func (s *Server) handleSetVolume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req SetVolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "Invalid JSON body", nil)
		return
	}

	snap, clamped := sess.SetVolume(req.Volume)
	s.writeJSON(w, http.StatusOK, SetVolumeResponse{
		Session:    snap,
		Clamped:    clamped,
		AppVersion: AppVersion,
	})
}

// handleAdvance moves the session into the guessing phase.
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, SessionResponse{
		Session:    sess.Advance(),
		AppVersion: AppVersion,
	})
}

// handleGuess evaluates an exponent guess. A wrong guess is a successful
// response; only unparseable input and phase violations are errors.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "Invalid JSON body", nil)
		return
	}

	raw, ok := rawExponent(req.Exponent)
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidInput, "Please enter a number.", nil)
		return
	}

	att, err := sess.Guess(raw)
	switch {
	case errors.Is(err, adiabatic.ErrInvalidInput):
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidInput, "Please enter a number.", nil)
		return
	case errors.Is(err, adiabatic.ErrNumericOverflow):
		s.writeError(w, r, http.StatusBadRequest, ErrTypeNumericOverflow,
			"That exponent is too extreme to plot. Try a value closer to 1.", nil)
		return
	case errors.Is(err, session.ErrWrongPhase):
		s.writeError(w, r, http.StatusConflict, ErrTypeWrongPhase, "Advance past the introduction before guessing.", nil)
		return
	case err != nil:
		s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error(), nil)
		return
	}

	feedback := "Not quite. Compare your curve with the true one and try again!"
	if att.Correct {
		feedback = "Correct! You found the adiabatic exponent!"
	}

	s.writeJSON(w, http.StatusOK, GuessResponse{
		Attempt:    att,
		Feedback:   feedback,
		AppVersion: AppVersion,
	})
}

// lookupSession resolves the {id} route parameter, writing the 404 itself
// when the session does not exist.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.Get(id)
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, ErrTypeSessionNotFound, "Session not found",
			map[string]any{"id": id})
		return nil, false
	}
	return sess, true
}

// rawExponent normalizes the guess field: JSON numbers keep their exact
// literal, strings pass through for the core parser to judge.
func rawExponent(v any) (string, bool) {
	switch g := v.(type) {
	case string:
		return g, true
	case float64:
		return strconv.FormatFloat(g, 'g', -1, 64), true
	default:
		return "", false
	}
}
