package handler

import (
	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/handler/http"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/metrics"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers for the configured listeners.
// Metrics are attached to the HTTP handler only when a metrics listener is
// configured.
func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	if cfg.MetricsAddress == "" {
		m = nil
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, logger),
	}, nil
}
