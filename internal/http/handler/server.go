// Package handler contains the JSON HTTP handlers for the capacity
// API.
package handler

import (
	"time"

	"github.com/teampulse/teampulse/internal/service"
)

// Server holds handler dependencies.
type Server struct {
	capacity *service.CapacityService
	now      func() time.Time
}

// NewServer creates a new HTTP handler server.
func NewServer(capacity *service.CapacityService) *Server {
	return &Server{
		capacity: capacity,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
