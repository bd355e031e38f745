package services

import (
	"context"
	"fmt"

	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/repositories"
)

const (
	// DefaultAuditLimit is used when no limit is requested
	DefaultAuditLimit = 100
	// MaxAuditLimit caps a single audit listing
	MaxAuditLimit = 1000
)

// AuditService exposes the recorded audit trail
type AuditService interface {
	RecentAudit(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// RecentAudit returns up to limit entries, newest first. Non-positive limits use the default.
func (s *auditService) RecentAudit(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}

	entries, err := s.auditRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	return entries, nil
}
