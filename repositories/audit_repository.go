package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type sqliteAuditRepository struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB, clock clockwork.Clock) AuditRepository {
	return &sqliteAuditRepository{db: db, clock: clock}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, request_id, method, path, status_code, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.clock.Now().UTC()
	}

	result, err := r.db.ExecContext(
		ctx,
		query,
		entry.Timestamp,
		entry.RequestID,
		entry.Method,
		entry.Path,
		entry.StatusCode,
		entry.UserAgent,
		entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	if entry.ID, err = result.LastInsertId(); err != nil {
		return fmt.Errorf("failed to get audit log ID: %w", err)
	}

	return nil
}

// Recent returns up to limit audit entries, newest first
func (r *sqliteAuditRepository) Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, timestamp, request_id, method, path, status_code, user_agent, ip_address
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		var entry models.AuditLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.RequestID,
			&entry.Method,
			&entry.Path,
			&entry.StatusCode,
			&entry.UserAgent,
			&entry.IPAddress,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
