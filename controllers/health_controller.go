package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/access-monitor/services"
)

// HealthController serves liveness and alert sink status
type HealthController struct {
	services      *services.Services
	sink          ConnectionReporter
	storageDriver string
	logger        *slog.Logger
}

// HealthResponse is the /health body
type HealthResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Storage    string `json:"storage"`
	AccessLogs int    `json:"accessLogs"`
}

// AlertSinkResponse is the /api/alert-sink body
type AlertSinkResponse struct {
	Connected bool `json:"connected"`
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services, sink ConnectionReporter, storageDriver string, logger *slog.Logger) *HealthController {
	return &HealthController{
		services:      services,
		sink:          sink,
		storageDriver: storageDriver,
		logger:        logger,
	}
}

// Health handles GET /health
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	count, err := c.services.AccessLogs.CountAccessLogs(r.Context())
	if err != nil {
		c.logger.ErrorContext(r.Context(), "Health check failed", "error", err)
		writeJSON(w, c.logger, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unhealthy",
			Service: "access-monitor",
			Storage: c.storageDriver,
		})
		return
	}

	writeJSON(w, c.logger, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Service:    "access-monitor",
		Storage:    c.storageDriver,
		AccessLogs: count,
	})
}

// AlertSink handles GET /api/alert-sink
func (c *HealthController) AlertSink(w http.ResponseWriter, r *http.Request) {
	connected := c.sink != nil && c.sink.IsConnected()
	writeJSON(w, c.logger, http.StatusOK, AlertSinkResponse{Connected: connected})
}
