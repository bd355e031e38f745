package repositories

import (
	"context"
	"database/sql"

	"github.com/jonboulle/clockwork"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	AccessLogs       AccessLogRepository
	MonitoringStatus MonitoringStatusRepository
	// Audit is nil when the backing store cannot persist an audit trail
	Audit AuditRepository
}

// NewRepositories creates SQLite-backed repositories
func NewRepositories(ctx context.Context, db *sql.DB, clock clockwork.Clock) (*Repositories, error) {
	monitoringStatus, err := NewMonitoringStatusRepository(ctx, db, clock)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		AccessLogs:       NewAccessLogRepository(db, clock),
		MonitoringStatus: monitoringStatus,
		Audit:            NewAuditRepository(db, clock),
	}, nil
}

// NewMemoryRepositories creates process-lifetime in-memory repositories
func NewMemoryRepositories(clock clockwork.Clock) *Repositories {
	return &Repositories{
		AccessLogs:       NewMemoryAccessLogRepository(clock),
		MonitoringStatus: NewMemoryMonitoringStatusRepository(clock),
	}
}
