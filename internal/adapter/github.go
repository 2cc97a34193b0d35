package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/utils"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

const githubAcceptHeader = "application/vnd.github+json"

type gitHubDispatcher struct {
	client *utils.HTTPClient

	url       string
	token     string
	userAgent string

	logger *logger.Logger
}

// NewGitHubDispatcher constructs the resty implementation of [Dispatcher]
// that posts events to the repository-dispatch endpoint configured in cfg.
//
// An empty cfg.Token is accepted: every Dispatch call then fails with
// [ErrDispatchTokenMissing] without contacting the endpoint. Returns an error
// if cfg.URL is not an absolute http(s) URL.
func NewGitHubDispatcher(cfg config.DispatchConfig, logger *logger.Logger) (Dispatcher, error) {
	dispatchURL, err := normalizeURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid dispatch url: %w", err)
	}

	if cfg.Token == "" {
		logger.Warn().Msg("dispatch token is empty, every submission will fail")
	}

	return &gitHubDispatcher{
		client:    utils.NewHTTPClientWithTimeout(cfg.RequestTimeout),
		url:       dispatchURL,
		token:     strings.TrimSpace(cfg.Token),
		userAgent: cfg.UserAgent,
		logger:    logger,
	}, nil
}

// Dispatch implements [Dispatcher]. It POSTs event as JSON with the bearer
// credential and the GitHub media type.
func (g *gitHubDispatcher) Dispatch(ctx context.Context, event models.DispatchEvent) error {
	if g.token == "" {
		return ErrDispatchTokenMissing
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(g.token).
		SetHeader("Accept", githubAcceptHeader).
		SetHeader("User-Agent", g.userAgent).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(g.url)
	if err != nil {
		return fmt.Errorf("dispatch request: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("dispatch endpoint answered")

	return mapDispatchResponse(resp)
}
