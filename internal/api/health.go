package api

import (
	"fmt"
	"net/http"
	"time"
)

// HealthStatus represents the overall health status.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheck represents an individual health check.
type HealthCheck struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// HealthCheckResponse represents the health check response.
type HealthCheckResponse struct {
	Status     HealthStatus           `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	AppVersion string                 `json:"app_version"`
	Uptime     string                 `json:"uptime"`
	Checks     map[string]HealthCheck `json:"checks"`
}

// handleHealthCheck reports component health: the element catalog and the
// backing database.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]HealthCheck)
	overall := HealthStatusHealthy

	catalogCheck := HealthCheck{
		Status:  HealthStatusHealthy,
		Message: fmt.Sprintf("%d elements loaded", s.catalog.Len()),
	}
	if s.catalog.Len() == 0 {
		catalogCheck = HealthCheck{Status: HealthStatusDegraded, Message: "element catalog is empty"}
		overall = HealthStatusDegraded
	}
	checks["catalog"] = catalogCheck

	dbCheck := HealthCheck{Status: HealthStatusHealthy, Message: "database connection healthy"}
	if s.db == nil {
		dbCheck = HealthCheck{Status: HealthStatusDegraded, Message: "running without a database"}
		if overall == HealthStatusHealthy {
			overall = HealthStatusDegraded
		}
	} else if _, err := s.db.CountElements(); err != nil {
		dbCheck = HealthCheck{Status: HealthStatusUnhealthy, Message: err.Error()}
		overall = HealthStatusUnhealthy
	}
	checks["database"] = dbCheck

	checks["sessions"] = HealthCheck{
		Status:  HealthStatusHealthy,
		Message: fmt.Sprintf("%d live sessions", s.sessions.Count()),
	}

	status := http.StatusOK
	if overall == HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	s.writeJSON(w, status, HealthCheckResponse{
		Status:     overall,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		AppVersion: AppVersion,
		Uptime:     time.Since(s.startTime).String(),
		Checks:     checks,
	})
}

// handleReadiness reports whether the server can serve game traffic.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	ready := true
	message := "Ready"

	if err := s.scenario.Validate(); err != nil {
		ready = false
		message = err.Error()
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	s.writeJSON(w, status, map[string]any{
		"ready":       ready,
		"message":     message,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"app_version": AppVersion,
	})
}

// handleLiveness just confirms the process is responding.
func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"alive":       true,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(s.startTime).String(),
		"app_version": AppVersion,
	})
}
