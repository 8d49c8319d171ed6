package handler

import (
	"net/http"
	"time"

	"github.com/teampulse/teampulse/internal/http/response"
	"github.com/teampulse/teampulse/internal/sprint"
)

// targetDate reads the named ISO-date query parameter, defaulting to
// today when absent.
func (s *Server) targetDate(r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return sprint.Midnight(s.now()), true
	}
	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// GetCurrentSprint handles GET /v1/sprints/current.
func (s *Server) GetCurrentSprint(w http.ResponseWriter, r *http.Request) {
	target, ok := s.targetDate(r, "date")
	if !ok {
		response.ValidationError(w, "date", "must be an ISO date (YYYY-MM-DD)")
		return
	}

	info, err := s.capacity.CurrentSprint(target)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, mapSprintToDTO(info))
}

// GetSprintSettings handles GET /v1/sprints/settings.
func (s *Server) GetSprintSettings(w http.ResponseWriter, r *http.Request) {
	target, ok := s.targetDate(r, "date")
	if !ok {
		response.ValidationError(w, "date", "must be an ISO date (YYYY-MM-DD)")
		return
	}

	record, result, err := s.capacity.SprintSettings(r.Context(), target)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, struct {
		Settings   sprint.SettingsRecord   `json:"settings"`
		Validation sprint.ValidationResult `json:"validation"`
	}{Settings: record, Validation: result})
}
