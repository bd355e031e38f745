package models

import "time"

// MonitoringStatusID is the fixed identifier of the singleton status record
const MonitoringStatusID = 1

// MonitoringStatus represents the global monitoring on/off switch
type MonitoringStatus struct {
	ID          int       `json:"id" db:"id"`
	IsEnabled   bool      `json:"isEnabled" db:"is_enabled"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated_ns"`
}

// DefaultMonitoringStatus returns the status a fresh store starts with
func DefaultMonitoringStatus(now time.Time) MonitoringStatus {
	return MonitoringStatus{
		ID:          MonitoringStatusID,
		IsEnabled:   true,
		LastUpdated: now,
	}
}

// MonitoringStatusForm represents the payload for updating the monitoring status.
// Nil fields are left unchanged.
type MonitoringStatusForm struct {
	IsEnabled *bool `json:"isEnabled,omitempty"`
}

// Apply merges the supplied fields into status and stamps it with now
func (f *MonitoringStatusForm) Apply(status *MonitoringStatus, now time.Time) {
	if f.IsEnabled != nil {
		status.IsEnabled = *f.IsEnabled
	}
	status.LastUpdated = now
}
