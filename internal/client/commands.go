package client

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/service"
	"github.com/spf13/cobra"
)

// stdinName selects standard input in place of a file argument.
const stdinName = "-"

// shortDigestLen is how much of a digest is shown after a submission.
const shortDigestLen = 12

func (a *App) submitCommand(settings *config.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <file>...",
		Short: "Post progress files to the relay",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSettings(*settings); err != nil {
				return err
			}

			services, err := a.newServices(*settings, a.logger)
			if err != nil {
				return err
			}

			return a.submitFiles(cmd, services.SubmissionService, args)
		},
	}
}

func (a *App) submitFiles(cmd *cobra.Command, svc service.ClientSubmissionService, paths []string) error {
	out := cmd.OutOrStdout()

	var failed int
	for _, path := range paths {
		name := displayName(path)

		body, err := a.readInput(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", name, err)
			continue
		}

		envelope, err := svc.Submit(cmd.Context(), body)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", name, err)
		case !envelope.OK:
			failed++
			fmt.Fprintf(out, "✗ %s: %s\n", name, envelope.Error)
			if envelope.Body != nil && *envelope.Body != "" {
				fmt.Fprintf(out, "  upstream said: %s\n", *envelope.Body)
			}
		default:
			fmt.Fprintf(out, "✓ %s → %s\n", name, shorten(envelope.SHA256))
		}
	}

	fmt.Fprintf(out, "%d of %d submitted\n", len(paths)-failed, len(paths))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSubmissionsFailed, failed, len(paths))
	}
	return nil
}

func (a *App) digestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <file>...",
		Short: "Print the digest the relay computes for each file",
		Long:  `Prints one "<sha256>  <file>" line per file, in the format of sha256sum. Use "-" to read standard input.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services := newOfflineServices(a)

			for _, path := range args {
				body, err := a.readInput(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", services.SubmissionService.Digest(body), path)
			}
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), a.buildInfo.String())
		},
	}
}

func (a *App) readInput(path string) ([]byte, error) {
	if path == stdinName {
		body, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read standard input: %w", err)
		}
		return body, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

// newOfflineServices builds client services that never reach the relay.
func newOfflineServices(a *App) *service.ClientServices {
	return service.NewClientServices(nil, a.logger)
}

func validateSettings(settings config.Client) error {
	cfg := config.ClientConfig{App: config.App{LogLevel: "warn"}, Client: settings}
	return cfg.Validate()
}

func displayName(path string) string {
	if path == stdinName {
		return "stdin"
	}
	return filepath.Base(path)
}

func shorten(digest string) string {
	if len(digest) > shortDigestLen {
		return digest[:shortDigestLen]
	}
	return digest
}
