package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/config"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/utils"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

// Headers attached by the client to identify the submitter.
const (
	HeaderGamer     = "X-Gamer"
	HeaderEmailHash = "X-Email-Hash"
)

type relayClient struct {
	client   *utils.HTTPClient
	relayURL string

	logger *logger.Logger
}

// NewRelayClient constructs the resty implementation of [RelayClient].
// The relay address is normalised ("localhost:8080" becomes
// "http://localhost:8080") and every request is bounded by
// cfg.RequestTimeout.
func NewRelayClient(cfg config.Client, logger *logger.Logger) (RelayClient, error) {
	relayURL, err := normalizeURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid relay url: %w", err)
	}

	return &relayClient{
		client:   utils.NewHTTPClientWithTimeout(cfg.RequestTimeout),
		relayURL: relayURL,
		logger:   logger,
	}, nil
}

// Submit implements [RelayClient].
func (c *relayClient) Submit(ctx context.Context, submission models.Submission, meta models.SubmitterMeta) (models.Envelope, error) {
	var envelope models.Envelope

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/yaml").
		SetBody(submission.Bytes())
	if meta.Gamer != "" {
		req.SetHeader(HeaderGamer, meta.Gamer)
	}
	if meta.EmailHash != "" {
		req.SetHeader(HeaderEmailHash, meta.EmailHash)
	}

	resp, err := req.Post(c.relayURL)
	if err != nil {
		return envelope, fmt.Errorf("submit request: %w", err)
	}
	if err = mapRelayResponse(resp); err != nil {
		return envelope, err
	}

	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return envelope, fmt.Errorf("%w: %w", ErrInvalidRelayResponse, err)
	}

	c.logger.Debug().Bool("ok", envelope.OK).Str("sha256", envelope.SHA256).Msg("relay answered")

	return envelope, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}
