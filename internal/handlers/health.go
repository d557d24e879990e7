package handlers

import (
	"net/http"
	"time"

	"stefan-booking/internal/transport"
)

type HealthResponse struct {
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	BrevoConfigured bool      `json:"brevoConfigured"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, r, http.StatusOK, HealthResponse{
		Status:          "ok",
		Timestamp:       s.Now().UTC().Truncate(time.Millisecond),
		BrevoConfigured: s.Cfg.BrevoConfigured(),
	})
}
