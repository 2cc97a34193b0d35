package main

import (
	"fmt"
	"os"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/handler"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/metrics"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/server"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/service"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("devopsmind-relay")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("metrics_address", cfg.Server.MetricsAddress).
		Str("dispatch_url", cfg.Dispatch.URL).
		Str("event_type", cfg.Dispatch.EventType).
		Dur("dispatch_timeout", cfg.Dispatch.RequestTimeout).
		Bool("token_configured", cfg.Dispatch.Token != "").
		Msg("received configs")

	var m *metrics.Metrics
	if cfg.Server.MetricsAddress != "" {
		m = metrics.New()
	}

	dispatcher, err := adapter.NewGitHubDispatcher(cfg.Dispatch, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dispatcher")
	}

	services := service.NewServices(dispatcher, cfg.Dispatch, m, log)

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
