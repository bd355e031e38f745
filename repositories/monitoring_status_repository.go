package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/models"
)

// MonitoringStatusRepository holds the singleton monitoring status record
type MonitoringStatusRepository interface {
	// Get returns the current status, enabled by default
	Get(ctx context.Context) (*models.MonitoringStatus, error)
	// Update merges the supplied fields, refreshes LastUpdated and returns the full record
	Update(ctx context.Context, form *models.MonitoringStatusForm) (*models.MonitoringStatus, error)
}

// monitoringStatusRepository implements MonitoringStatusRepository on SQLite
type monitoringStatusRepository struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewMonitoringStatusRepository creates a new SQLite monitoring status repository.
// The default record is seeded here so reads never write.
func NewMonitoringStatusRepository(ctx context.Context, db *sql.DB, clock clockwork.Clock) (MonitoringStatusRepository, error) {
	query := `
		INSERT OR IGNORE INTO monitoring_status (id, is_enabled, last_updated_ns)
		VALUES (?, 1, ?)
	`

	if _, err := db.ExecContext(ctx, query, models.MonitoringStatusID, clock.Now().UTC().UnixNano()); err != nil {
		return nil, fmt.Errorf("failed to seed monitoring status: %w", err)
	}

	return &monitoringStatusRepository{db: db, clock: clock}, nil
}

// Get retrieves the status row
func (r *monitoringStatusRepository) Get(ctx context.Context) (*models.MonitoringStatus, error) {
	return r.load(ctx)
}

// Update applies the form in a single statement; a nil IsEnabled keeps the stored flag
func (r *monitoringStatusRepository) Update(ctx context.Context, form *models.MonitoringStatusForm) (*models.MonitoringStatus, error) {
	var isEnabled sql.NullBool
	if form != nil && form.IsEnabled != nil {
		isEnabled = sql.NullBool{Bool: *form.IsEnabled, Valid: true}
	}

	query := `
		UPDATE monitoring_status
		SET is_enabled = COALESCE(?, is_enabled), last_updated_ns = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, isEnabled, r.clock.Now().UTC().UnixNano(), models.MonitoringStatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to update monitoring status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, fmt.Errorf("monitoring status %d not found", models.MonitoringStatusID)
	}

	return r.load(ctx)
}

func (r *monitoringStatusRepository) load(ctx context.Context) (*models.MonitoringStatus, error) {
	query := `
		SELECT id, is_enabled, last_updated_ns
		FROM monitoring_status
		WHERE id = ?
	`

	var status models.MonitoringStatus
	var lastUpdatedNs int64
	err := r.db.QueryRowContext(ctx, query, models.MonitoringStatusID).Scan(
		&status.ID,
		&status.IsEnabled,
		&lastUpdatedNs,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("monitoring status %d not found", models.MonitoringStatusID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monitoring status: %w", err)
	}

	status.LastUpdated = time.Unix(0, lastUpdatedNs).UTC()
	return &status, nil
}
