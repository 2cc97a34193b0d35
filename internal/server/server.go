package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/handler"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
)

type server struct {
	httpServer      *httpServer
	metricsServer   *httpServer
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer("relay", cfg.HTTPAddress, handlers.HTTP.Init(), logger)

		if cfg.MetricsAddress != "" {
			if router := handlers.HTTP.InitMetrics(); router != nil {
				servers.metricsServer = newHTTPServer("metrics", cfg.MetricsAddress, router, logger)
			}
		}
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	listeners := s.listeners()
	if len(listeners) == 0 {
		return errNoServersToRun
	}

	for _, l := range listeners {
		if err := l.listen(); err != nil {
			s.closeListeners()
			return err
		}
	}

	errCh := make(chan error, len(listeners))
	for _, l := range listeners {
		go func() {
			errCh <- l.RunServer()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	for _, l := range s.listeners() {
		l.Shutdown(ctx)
	}
}

func (s *server) listeners() []*httpServer {
	var listeners []*httpServer
	if s.httpServer != nil {
		listeners = append(listeners, s.httpServer)
	}
	if s.metricsServer != nil {
		listeners = append(listeners, s.metricsServer)
	}
	return listeners
}

func (s *server) closeListeners() {
	for _, l := range s.listeners() {
		if l.listener != nil {
			_ = l.listener.Close()
		}
	}
}
