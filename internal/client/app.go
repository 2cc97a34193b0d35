package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/service"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
	"github.com/spf13/cobra"
)

// ServicesFactory builds the client services for the effective client
// settings, after command-line flags were applied.
type ServicesFactory func(cfg config.Client, logger *logger.Logger) (*service.ClientServices, error)

// NewRelayServices is the default [ServicesFactory]: it talks to the relay
// over HTTP.
func NewRelayServices(cfg config.Client, logger *logger.Logger) (*service.ClientServices, error) {
	relayClient, err := adapter.NewRelayClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create relay client: %w", err)
	}

	return service.NewClientServices(relayClient, logger), nil
}

type App struct {
	cfg         config.ClientConfig
	buildInfo   models.AppBuildInfo
	newServices ServicesFactory

	stdin  io.Reader
	stdout io.Writer

	logger *logger.Logger
}

func NewApp(cfg config.ClientConfig, buildInfo models.AppBuildInfo, newServices ServicesFactory, logger *logger.Logger) *App {
	return &App{
		cfg:         cfg,
		buildInfo:   buildInfo,
		newServices: newServices,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		logger:      logger,
	}
}

// SetIO replaces the standard streams used by the commands.
func (a *App) SetIO(stdin io.Reader, stdout io.Writer) {
	a.stdin = stdin
	a.stdout = stdout
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)

	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	settings := a.cfg.Client
	var verbose bool

	root := &cobra.Command{
		Use:   "devopsmind-submit",
		Short: "Send DevOpsMind progress files to the leaderboard relay",
		Long: `devopsmind-submit posts YAML progress files to the relay, which forwards
them to the leaderboard repository. Every file is sent once; files that are
not accepted are reported and left untouched.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = a.cfg.App.LogLevel
			}
			return a.logger.SetLevel(level)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&settings.RelayURL, "relay-url", settings.RelayURL, "relay address (env CLIENT_RELAY_URL)")
	flags.DurationVar(&settings.RequestTimeout, "timeout", settings.RequestTimeout, "timeout of a single submission (env CLIENT_REQUEST_TIMEOUT)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at the configured level (env APP_LOG_LEVEL) instead of warn")

	root.AddCommand(
		a.submitCommand(&settings),
		a.digestCommand(),
		a.versionCommand(),
	)

	return root
}
