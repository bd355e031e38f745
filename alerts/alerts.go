package alerts

import (
	"context"
	"errors"
	"time"

	"github.com/blogem/access-monitor/models"
)

// ErrNotInitialized is returned by sinks that have no usable connection
var ErrNotInitialized = errors.New("alert sink not initialized")

// Alert is the payload pushed to an external notification service
type Alert struct {
	App       string            `json:"app"`
	Type      models.SensorType `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
}

// Sink pushes alerts to an external service and returns the id it assigned
type Sink interface {
	PushAlert(ctx context.Context, alert Alert) (string, error)
}

// NopSink is used when no alert service is configured
type NopSink struct{}

// PushAlert always reports ErrNotInitialized
func (NopSink) PushAlert(context.Context, Alert) (string, error) {
	return "", ErrNotInitialized
}

// IsConnected always reports false
func (NopSink) IsConnected() bool {
	return false
}
