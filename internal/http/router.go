// Package http wires the chi router for the capacity API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/teampulse/teampulse/internal/http/handler"
)

// NewRouter creates and configures the chi router with all middleware
// and routes.
func NewRouter(server *handler.Server) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			slog.ErrorContext(r.Context(), "Failed to write health check response", "error", err)
		}
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/teams", server.CreateTeam)
		r.Get("/teams", server.ListTeams)
		r.Post("/teams/{teamID}/members", server.CreateMember)
		r.Get("/teams/{teamID}/capacity", server.GetTeamCapacity)

		r.Get("/members/{memberID}/schedule", server.GetMemberSchedule)
		r.Put("/members/{memberID}/schedule/{date}", server.PutMemberAvailability)

		r.Get("/sprints/current", server.GetCurrentSprint)
		r.Get("/sprints/settings", server.GetSprintSettings)

		r.Post("/exports/capacity", server.CreateCapacityExport)
	})

	return r
}
