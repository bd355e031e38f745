package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/models"
)

// AccessLogRepository interface defines access log storage operations.
// Implementations trust their caller; entries must be validated beforehand.
type AccessLogRepository interface {
	// List returns every entry, newest timestamp first, ties broken by newest id
	List(ctx context.Context) ([]models.AccessLogEntry, error)
	// Create assigns the next id, stamps a zero Timestamp with the current time and stores the entry
	Create(ctx context.Context, entry *models.AccessLogEntry) error
	// Clear removes all entries without resetting the id sequence
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// accessLogRepository implements AccessLogRepository on SQLite
type accessLogRepository struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewAccessLogRepository creates a new SQLite access log repository
func NewAccessLogRepository(db *sql.DB, clock clockwork.Clock) AccessLogRepository {
	return &accessLogRepository{db: db, clock: clock}
}

// List retrieves all access log entries, newest first
func (r *accessLogRepository) List(ctx context.Context) ([]models.AccessLogEntry, error) {
	query := `
		SELECT id, app, type, timestamp_ns, external_alert_id
		FROM access_logs
		ORDER BY timestamp_ns DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query access logs: %w", err)
	}
	defer rows.Close()

	entries := make([]models.AccessLogEntry, 0)
	for rows.Next() {
		var entry models.AccessLogEntry
		var timestampNs int64
		var externalAlertID sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.App,
			&entry.Type,
			&timestampNs,
			&externalAlertID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access log: %w", err)
		}

		entry.Timestamp = time.Unix(0, timestampNs).UTC()
		if externalAlertID.Valid {
			entry.ExternalAlertID = &externalAlertID.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating access logs: %w", err)
	}

	return entries, nil
}

// Create inserts a new access log entry and sets its ID. A zero Timestamp is set to now.
func (r *accessLogRepository) Create(ctx context.Context, entry *models.AccessLogEntry) error {
	query := `
		INSERT INTO access_logs (app, type, timestamp_ns, external_alert_id)
		VALUES (?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.clock.Now().UTC()
	}

	var externalAlertID sql.NullString
	if entry.ExternalAlertID != nil {
		externalAlertID = sql.NullString{String: *entry.ExternalAlertID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, entry.App, string(entry.Type), entry.Timestamp.UnixNano(), externalAlertID)
	if err != nil {
		return fmt.Errorf("failed to create access log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get access log ID: %w", err)
	}

	entry.ID = id
	return nil
}

// Clear deletes every access log entry
func (r *accessLogRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM access_logs"); err != nil {
		return fmt.Errorf("failed to clear access logs: %w", err)
	}
	return nil
}

// Count returns the number of stored entries
func (r *accessLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM access_logs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count access logs: %w", err)
	}
	return count, nil
}
