package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/config"
)

// FirebaseSink stands in for the Firebase Realtime Database. It only checks that
// configuration is present and mints ids locally; nothing leaves the process.
type FirebaseSink struct {
	cfg         config.FirebaseConfig
	clock       clockwork.Clock
	logger      *slog.Logger
	initialized atomic.Bool
}

// NewFirebaseSink creates a sink for the given configuration. Call Initialize before pushing.
func NewFirebaseSink(cfg config.FirebaseConfig, clock clockwork.Clock, logger *slog.Logger) *FirebaseSink {
	return &FirebaseSink{cfg: cfg, clock: clock, logger: logger}
}

// Initialize reports whether the configuration is complete enough to push alerts
func (s *FirebaseSink) Initialize(ctx context.Context) bool {
	if s.cfg.APIKey == "" || s.cfg.DatabaseURL == "" || s.cfg.ProjectID == "" {
		s.logger.WarnContext(ctx, "Firebase configuration incomplete")
		s.initialized.Store(false)
		return false
	}

	s.logger.InfoContext(ctx, "Firebase initialized", "project_id", s.cfg.ProjectID)
	s.initialized.Store(true)
	return true
}

// IsConnected reports whether Initialize succeeded
func (s *FirebaseSink) IsConnected() bool {
	return s.initialized.Load()
}

// PushAlert records the alert under /alerts/<id> and returns the id
func (s *FirebaseSink) PushAlert(ctx context.Context, alert Alert) (string, error) {
	if !s.IsConnected() {
		s.logger.WarnContext(ctx, "Firebase not initialized")
		return "", ErrNotInitialized
	}

	id := s.newAlertID()
	s.logger.InfoContext(ctx, "Pushing alert to Firebase",
		"path", "/alerts/"+id,
		"app", alert.App,
		"type", alert.Type,
		"timestamp", alert.Timestamp,
	)

	return id, nil
}

// alertSuffixLen is the number of base36 characters after the timestamp
const alertSuffixLen = 9

// newAlertID returns alert_<unix millis>_<9 random base36 chars>
func (s *FirebaseSink) newAlertID() string {
	id := uuid.New()
	suffix := new(big.Int).SetBytes(id[:]).Text(36)
	if len(suffix) < alertSuffixLen {
		suffix = strings.Repeat("0", alertSuffixLen-len(suffix)) + suffix
	}
	return fmt.Sprintf("alert_%d_%s", s.clock.Now().UnixMilli(), suffix[len(suffix)-alertSuffixLen:])
}
