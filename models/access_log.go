package models

import "time"

// SensorType identifies which device was accessed
type SensorType string

const (
	SensorMicrophone SensorType = "microphone"
	SensorCamera     SensorType = "camera"
)

// SensorTypes lists every accepted sensor type
var SensorTypes = []SensorType{SensorMicrophone, SensorCamera}

// IsValid reports whether t is one of the known sensor types
func (t SensorType) IsValid() bool {
	for _, known := range SensorTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AccessLogEntry represents a single reported microphone or camera access
type AccessLogEntry struct {
	ID              int64      `json:"id" db:"id"`
	App             string     `json:"app" db:"app"`
	Type            SensorType `json:"type" db:"type"`
	Timestamp       time.Time  `json:"timestamp" db:"timestamp_ns"`
	ExternalAlertID *string    `json:"externalAlertId" db:"external_alert_id"`
}

// AccessLogForm represents the payload for creating an access log entry
type AccessLogForm struct {
	App             string     `json:"app"`
	Type            SensorType `json:"type"`
	ExternalAlertID *string    `json:"externalAlertId,omitempty"`
}

// Validate validates the access log form data
func (f *AccessLogForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if f.App == "" {
		errs = append(errs, ValidationError{Field: "app", Message: "App is required"})
	}

	if !f.Type.IsValid() {
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: `Type must be "microphone" or "camera"`,
		})
	}

	return errs
}

// ToEntry builds an unsaved entry from the form; ID and Timestamp are left for the store
func (f *AccessLogForm) ToEntry() *AccessLogEntry {
	return &AccessLogEntry{
		App:             f.App,
		Type:            f.Type,
		ExternalAlertID: f.ExternalAlertID,
	}
}
