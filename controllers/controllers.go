package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/services"
)

// maxRequestBody caps JSON request bodies
const maxRequestBody = 1 << 20

const invalidRequestMessage = "Invalid request data"

// ConnectionReporter is implemented by alert sinks that can report their state
type ConnectionReporter interface {
	IsConnected() bool
}

// Controllers holds all controller instances
type Controllers struct {
	AccessLogs *AccessLogController
	Monitoring *MonitoringController
	Health     *HealthController
	// Audit is nil when no audit trail is kept
	Audit *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, sink ConnectionReporter, storageDriver string, logger *slog.Logger) *Controllers {
	controllers := &Controllers{
		AccessLogs: NewAccessLogController(services, logger),
		Monitoring: NewMonitoringController(services, logger),
		Health:     NewHealthController(services, sink, storageDriver, logger),
	}
	if services.Audit != nil {
		controllers.Audit = NewAuditController(services, logger)
	}
	return controllers
}

// writeJSON encodes data with the given status code
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers already sent
		logger.Error("Failed to encode response", "error", err, "status", status)
	}
}

// writeMessage writes a {"message": ...} body
func writeMessage(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, models.MessageResponse{Message: message})
}

// writeValidationError writes a 400 with the field errors
func writeValidationError(w http.ResponseWriter, logger *slog.Logger, errs models.ValidationErrors) {
	writeJSON(w, logger, http.StatusBadRequest, models.ErrorResponse{
		Message: invalidRequestMessage,
		Errors:  errs,
	})
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
// Decode failures come back as ValidationErrors so callers can answer 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) models.ValidationErrors {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return models.ValidationErrors{{
			Field:   typeErr.Field,
			Message: "Expected " + typeErr.Type.Kind().String() + " for " + typeErr.Field,
		}}
	}

	return models.ValidationErrors{{Field: "body", Message: "Request body must be valid JSON"}}
}
