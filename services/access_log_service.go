package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/alerts"
	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/repositories"
)

// AccessLogService interface defines access log business logic
type AccessLogService interface {
	ListAccessLogs(ctx context.Context) ([]models.AccessLogEntry, error)
	RecordAccess(ctx context.Context, form *models.AccessLogForm) (*models.AccessLogEntry, error)
	ClearAccessLogs(ctx context.Context) error
	CountAccessLogs(ctx context.Context) (int, error)
}

// accessLogService implements AccessLogService interface
type accessLogService struct {
	accessLogRepo repositories.AccessLogRepository
	sink          alerts.Sink
	clock         clockwork.Clock
	logger        *slog.Logger
}

// NewAccessLogService creates a new access log service
func NewAccessLogService(accessLogRepo repositories.AccessLogRepository, sink alerts.Sink, clock clockwork.Clock, logger *slog.Logger) AccessLogService {
	return &accessLogService{
		accessLogRepo: accessLogRepo,
		sink:          sink,
		clock:         clock,
		logger:        logger,
	}
}

// ListAccessLogs retrieves all access logs, newest first
func (s *accessLogService) ListAccessLogs(ctx context.Context) ([]models.AccessLogEntry, error) {
	return s.accessLogRepo.List(ctx)
}

// RecordAccess validates the form and stores a new access log entry.
// Validation failures are returned as models.ValidationErrors.
func (s *accessLogService) RecordAccess(ctx context.Context, form *models.AccessLogForm) (*models.AccessLogEntry, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	entry := form.ToEntry()
	entry.Timestamp = s.clock.Now().UTC()
	if entry.ExternalAlertID == nil {
		entry.ExternalAlertID = s.pushAlert(ctx, entry)
	}

	if err := s.accessLogRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create access log: %w", err)
	}

	s.logger.InfoContext(ctx, "Access recorded",
		"id", entry.ID,
		"app", entry.App,
		"type", entry.Type,
		"external_alert_id", entry.ExternalAlertID,
	)

	return entry, nil
}

// pushAlert forwards the access to the alert sink. Sink failures never block the create.
func (s *accessLogService) pushAlert(ctx context.Context, entry *models.AccessLogEntry) *string {
	if s.sink == nil {
		return nil
	}

	id, err := s.sink.PushAlert(ctx, alerts.Alert{
		App:       entry.App,
		Type:      entry.Type,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		s.logger.DebugContext(ctx, "Alert not forwarded", "app", entry.App, "error", err)
		return nil
	}
	if id == "" {
		return nil
	}

	return &id
}

// ClearAccessLogs removes every access log entry
func (s *accessLogService) ClearAccessLogs(ctx context.Context) error {
	if err := s.accessLogRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear access logs: %w", err)
	}

	s.logger.InfoContext(ctx, "Access logs cleared")
	return nil
}

// CountAccessLogs returns the number of stored entries
func (s *accessLogService) CountAccessLogs(ctx context.Context) (int, error) {
	return s.accessLogRepo.Count(ctx)
}
