package repositories

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/models"
)

type memoryMonitoringStatusRepository struct {
	mu     sync.RWMutex
	clock  clockwork.Clock
	status models.MonitoringStatus
}

// NewMemoryMonitoringStatusRepository creates the status register, enabled from the start
func NewMemoryMonitoringStatusRepository(clock clockwork.Clock) MonitoringStatusRepository {
	return &memoryMonitoringStatusRepository{
		clock:  clock,
		status: models.DefaultMonitoringStatus(clock.Now().UTC()),
	}
}

func (r *memoryMonitoringStatusRepository) Get(ctx context.Context) (*models.MonitoringStatus, error) {
	r.mu.RLock()
	status := r.status
	r.mu.RUnlock()
	return &status, nil
}

func (r *memoryMonitoringStatusRepository) Update(ctx context.Context, form *models.MonitoringStatusForm) (*models.MonitoringStatus, error) {
	r.mu.Lock()
	form.Apply(&r.status, r.clock.Now().UTC())
	status := r.status
	r.mu.Unlock()
	return &status, nil
}
