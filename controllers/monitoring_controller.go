package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/services"
)

// MonitoringController handles /api/monitoring-status
type MonitoringController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewMonitoringController creates a new monitoring controller
func NewMonitoringController(services *services.Services, logger *slog.Logger) *MonitoringController {
	return &MonitoringController{
		services: services,
		logger:   logger,
	}
}

// Get handles GET /api/monitoring-status
func (c *MonitoringController) Get(w http.ResponseWriter, r *http.Request) {
	status, err := c.services.Monitoring.GetStatus(r.Context())
	if err != nil {
		c.logger.ErrorContext(r.Context(), "Failed to fetch monitoring status", "error", err)
		writeMessage(w, c.logger, http.StatusInternalServerError, "Failed to fetch monitoring status")
		return
	}

	writeJSON(w, c.logger, http.StatusOK, status)
}

// Update handles PUT /api/monitoring-status
func (c *MonitoringController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.MonitoringStatusForm
	if errs := decodeJSON(w, r, &form); errs.HasErrors() {
		writeValidationError(w, c.logger, errs)
		return
	}

	status, err := c.services.Monitoring.UpdateStatus(r.Context(), &form)
	if err != nil {
		c.logger.ErrorContext(r.Context(), "Failed to update monitoring status", "error", err)
		writeMessage(w, c.logger, http.StatusInternalServerError, "Failed to update monitoring status")
		return
	}

	c.logger.InfoContext(r.Context(), "Monitoring status updated", "is_enabled", status.IsEnabled)
	writeJSON(w, c.logger, http.StatusOK, status)
}
