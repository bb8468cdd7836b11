package controllers

import (
	"net/http"
	"time"

	h "eventbooking/internal/delivery/http/helpers"
)

// HealthResponse is the body of GET /health. It is not wrapped in the API envelope.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	h.WriteRaw(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   ServiceName,
	})
}
