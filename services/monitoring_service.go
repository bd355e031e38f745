package services

import (
	"context"
	"fmt"

	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/repositories"
)

// MonitoringService interface defines monitoring status business logic
type MonitoringService interface {
	GetStatus(ctx context.Context) (*models.MonitoringStatus, error)
	UpdateStatus(ctx context.Context, form *models.MonitoringStatusForm) (*models.MonitoringStatus, error)
}

type monitoringService struct {
	statusRepo repositories.MonitoringStatusRepository
}

// NewMonitoringService creates a new monitoring service
func NewMonitoringService(statusRepo repositories.MonitoringStatusRepository) MonitoringService {
	return &monitoringService{statusRepo: statusRepo}
}

// GetStatus retrieves the current monitoring status
func (s *monitoringService) GetStatus(ctx context.Context) (*models.MonitoringStatus, error) {
	status, err := s.statusRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get monitoring status: %w", err)
	}
	return status, nil
}

// UpdateStatus merges the supplied fields into the monitoring status
func (s *monitoringService) UpdateStatus(ctx context.Context, form *models.MonitoringStatusForm) (*models.MonitoringStatus, error) {
	if form == nil {
		form = &models.MonitoringStatusForm{}
	}

	status, err := s.statusRepo.Update(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to update monitoring status: %w", err)
	}
	return status, nil
}
