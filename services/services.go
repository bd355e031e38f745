package services

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/alerts"
	"github.com/blogem/access-monitor/repositories"
)

// Services holds all service instances
type Services struct {
	AccessLogs AccessLogService
	Monitoring MonitoringService
	// Audit is nil when the repositories keep no audit trail
	Audit AuditService
}

// NewServices creates and initializes all service instances.
// A nil sink disables server-side alert forwarding.
func NewServices(repos *repositories.Repositories, sink alerts.Sink, clock clockwork.Clock, logger *slog.Logger) *Services {
	services := &Services{
		AccessLogs: NewAccessLogService(repos.AccessLogs, sink, clock, logger),
		Monitoring: NewMonitoringService(repos.MonitoringStatus),
	}
	if repos.Audit != nil {
		services.Audit = NewAuditService(repos.Audit)
	}
	return services
}
