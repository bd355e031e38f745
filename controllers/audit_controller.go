package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/services"
)

// AuditController handles /api/audit-log
type AuditController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, logger *slog.Logger) *AuditController {
	return &AuditController{
		services: services,
		logger:   logger,
	}
}

// List handles GET /api/audit-log?limit=N
func (c *AuditController) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeValidationError(w, c.logger, models.ValidationErrors{{
				Field:   "limit",
				Message: "Limit must be a positive integer",
			}})
			return
		}
		limit = parsed
	}

	entries, err := c.services.Audit.RecentAudit(r.Context(), limit)
	if err != nil {
		c.logger.ErrorContext(r.Context(), "Failed to fetch audit log", "error", err)
		writeMessage(w, c.logger, http.StatusInternalServerError, "Failed to fetch audit log")
		return
	}

	writeJSON(w, c.logger, http.StatusOK, entries)
}
