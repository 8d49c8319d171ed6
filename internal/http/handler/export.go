package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/teampulse/teampulse/internal/http/response"
	"github.com/teampulse/teampulse/internal/service"
	"github.com/teampulse/teampulse/internal/sprint"
)

// CreateCapacityExport handles POST /v1/exports/capacity. The report
// covers the sprint containing the requested date (today when omitted).
func (s *Server) CreateCapacityExport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TeamID string `json:"team_id"`
		Date   string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}
	if req.TeamID == "" {
		response.ValidationError(w, "team_id", "required field missing")
		return
	}

	target := sprint.Midnight(s.now())
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			response.ValidationError(w, "date", "must be an ISO date (YYYY-MM-DD)")
			return
		}
		target = parsed
	}

	name, err := s.capacity.ExportTeamCapacity(r.Context(), req.TeamID, target)
	if errors.Is(err, service.ErrExportsDisabled) {
		response.Error(w, "EXPORTS_DISABLED", err.Error(), http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.Created(w, struct {
		ObjectName string `json:"object_name"`
	}{ObjectName: name})
}
