package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/services"
)

// AccessLogController handles /api/access-logs
type AccessLogController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewAccessLogController creates a new access log controller
func NewAccessLogController(services *services.Services, logger *slog.Logger) *AccessLogController {
	return &AccessLogController{
		services: services,
		logger:   logger,
	}
}

// List handles GET /api/access-logs
func (c *AccessLogController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.AccessLogs.ListAccessLogs(r.Context())
	if err != nil {
		c.logger.ErrorContext(r.Context(), "Failed to fetch access logs", "error", err)
		writeMessage(w, c.logger, http.StatusInternalServerError, "Failed to fetch access logs")
		return
	}

	writeJSON(w, c.logger, http.StatusOK, entries)
}

// Create handles POST /api/access-logs
func (c *AccessLogController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.AccessLogForm
	if errs := decodeJSON(w, r, &form); errs.HasErrors() {
		writeValidationError(w, c.logger, errs)
		return
	}

	entry, err := c.services.AccessLogs.RecordAccess(r.Context(), &form)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			writeValidationError(w, c.logger, verrs)
			return
		}

		c.logger.ErrorContext(r.Context(), "Failed to create access log", "error", err)
		writeMessage(w, c.logger, http.StatusInternalServerError, "Failed to create access log")
		return
	}

	writeJSON(w, c.logger, http.StatusCreated, entry)
}

// Clear handles DELETE /api/access-logs
func (c *AccessLogController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.services.AccessLogs.ClearAccessLogs(r.Context()); err != nil {
		c.logger.ErrorContext(r.Context(), "Failed to clear access logs", "error", err)
		writeMessage(w, c.logger, http.StatusInternalServerError, "Failed to clear access logs")
		return
	}

	writeMessage(w, c.logger, http.StatusOK, "Access logs cleared successfully")
}
