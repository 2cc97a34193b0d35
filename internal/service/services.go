package service

import (
	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/metrics"
)

type Services struct {
	SubmissionService SubmissionService
}

// NewServices assembles the relay services. Wrappers are applied in order,
// the first one ends up innermost.
func NewServices(dispatcher adapter.Dispatcher, cfg config.DispatchConfig, m *metrics.Metrics, logger *logger.Logger) *Services {
	wrappers := []SubmissionServiceWrapper{
		NewSubmissionLoggingService(logger),
	}
	if m != nil {
		wrappers = append(wrappers, NewSubmissionMetricsService(m))
	}

	return &Services{
		SubmissionService: wrap(NewSubmissionService(dispatcher, cfg.EventType), wrappers...),
	}
}

func wrap(svc SubmissionService, wrappers ...SubmissionServiceWrapper) SubmissionService {
	for _, w := range wrappers {
		svc = w.Wrap(svc)
	}
	return svc
}
