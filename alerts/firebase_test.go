package alerts

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/access-monitor/config"
	"github.com/blogem/access-monitor/logger"
	"github.com/blogem/access-monitor/models"
)

var completeConfig = config.FirebaseConfig{
	APIKey:      "key",
	DatabaseURL: "https://demo.firebaseio.com",
	ProjectID:   "demo",
}

func TestFirebaseSink_IncompleteConfig(t *testing.T) {
	ctx := context.Background()
	sink := NewFirebaseSink(config.FirebaseConfig{APIKey: "key"}, clockwork.NewFakeClock(), logger.Discard())

	assert.False(t, sink.Initialize(ctx))
	assert.False(t, sink.IsConnected())

	id, err := sink.PushAlert(ctx, Alert{App: "zoom", Type: models.SensorCamera})
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Empty(t, id)
}

func TestFirebaseSink_PushBeforeInitialize(t *testing.T) {
	sink := NewFirebaseSink(completeConfig, clockwork.NewFakeClock(), logger.Discard())

	_, err := sink.PushAlert(context.Background(), Alert{App: "zoom", Type: models.SensorCamera})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestFirebaseSink_PushAlert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	sink := NewFirebaseSink(completeConfig, clockwork.NewFakeClockAt(now), logger.Discard())

	require.True(t, sink.Initialize(ctx))
	assert.True(t, sink.IsConnected())

	first, err := sink.PushAlert(ctx, Alert{App: "whatsapp", Type: models.SensorMicrophone, Timestamp: now})
	require.NoError(t, err)
	second, err := sink.PushAlert(ctx, Alert{App: "whatsapp", Type: models.SensorMicrophone, Timestamp: now})
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^alert_1741064767000_[0-9a-z]{9}$`)
	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}

func TestNopSink(t *testing.T) {
	var sink Sink = NopSink{}

	id, err := sink.PushAlert(context.Background(), Alert{App: "zoom"})
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Empty(t, id)
}
