package http

import (
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/metrics"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/service"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the relay HTTP handler. m may be nil, in which case
// request metrics are not recorded and no metrics router is built.
func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
