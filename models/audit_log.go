package models

import "time"

// AuditLogEntry represents a single HTTP mutation event
type AuditLogEntry struct {
	ID         int64     `json:"id" db:"id"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	RequestID  string    `json:"requestId" db:"request_id"`
	Method     string    `json:"method" db:"method"`
	Path       string    `json:"path" db:"path"`
	StatusCode int       `json:"statusCode" db:"status_code"`
	UserAgent  string    `json:"userAgent" db:"user_agent"`
	IPAddress  string    `json:"ipAddress" db:"ip_address"`
}
