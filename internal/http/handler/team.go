package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teampulse/teampulse/internal/http/response"
)

// CreateTeam handles POST /v1/teams.
func (s *Server) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	team, err := s.capacity.CreateTeam(r.Context(), req.Name)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.Created(w, mapTeamToDTO(team))
}

// ListTeams handles GET /v1/teams.
func (s *Server) ListTeams(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.capacity.ListTeams(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	dtos := make([]TeamSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		dtos = append(dtos, mapTeamSummaryToDTO(summary))
	}
	response.OK(w, struct {
		Teams []TeamSummaryDTO `json:"teams"`
	}{Teams: dtos})
}

// CreateMember handles POST /v1/teams/{teamID}/members.
func (s *Server) CreateMember(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	member, err := s.capacity.CreateMember(r.Context(), teamID, req.Name)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.Created(w, mapMemberToDTO(member))
}

// GetTeamCapacity handles GET /v1/teams/{teamID}/capacity.
func (s *Server) GetTeamCapacity(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	target, ok := s.targetDate(r, "date")
	if !ok {
		response.ValidationError(w, "date", "must be an ISO date (YYYY-MM-DD)")
		return
	}

	capacity, err := s.capacity.TeamCapacity(r.Context(), teamID, target)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, mapCapacityToDTO(capacity))
}
