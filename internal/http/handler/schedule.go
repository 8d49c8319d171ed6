package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/teampulse/teampulse/internal/http/response"
)

// GetMemberSchedule handles GET /v1/members/{memberID}/schedule.
// Both from and to are required ISO dates; the range is inclusive.
func (s *Server) GetMemberSchedule(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")

	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		response.ValidationError(w, "from", "must be an ISO date (YYYY-MM-DD)")
		return
	}
	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		response.ValidationError(w, "to", "must be an ISO date (YYYY-MM-DD)")
		return
	}

	entries, err := s.capacity.MemberSchedule(r.Context(), memberID, from, to)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	dtos := make([]ScheduleEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, mapEntryToDTO(entry))
	}
	response.OK(w, struct {
		Entries []ScheduleEntryDTO `json:"entries"`
	}{Entries: dtos})
}

// PutMemberAvailability handles PUT /v1/members/{memberID}/schedule/{date}.
func (s *Server) PutMemberAvailability(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberID")

	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		response.ValidationError(w, "date", "must be an ISO date (YYYY-MM-DD)")
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	entry, err := s.capacity.UpsertAvailability(r.Context(), memberID, date, req.Value)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, mapEntryToDTO(entry))
}
