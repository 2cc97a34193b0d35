package service

import (
	"context"
	"strings"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/utils"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
	"gopkg.in/yaml.v3"
)

// UnknownGamer is sent when a document names no player.
const UnknownGamer = "unknown"

type clientSubmissionService struct {
	relayClient adapter.RelayClient

	logger *logger.Logger
}

func NewClientSubmissionService(relayClient adapter.RelayClient, logger *logger.Logger) ClientSubmissionService {
	return &clientSubmissionService{
		relayClient: relayClient,
		logger:      logger,
	}
}

func (s *clientSubmissionService) Submit(ctx context.Context, body []byte) (models.Envelope, error) {
	meta := s.submitterMeta(body)

	envelope, err := s.relayClient.Submit(ctx, models.NewSubmission(body), meta)
	if err != nil {
		return models.Envelope{}, mapAdapterError(err)
	}

	return envelope, nil
}

func (s *clientSubmissionService) Digest(body []byte) string {
	return utils.Digest(body)
}

func (s *clientSubmissionService) submitterMeta(body []byte) models.SubmitterMeta {
	meta, err := ParseSubmitterMeta(body)
	if err != nil {
		s.logger.Debug().Err(err).Msg("submission is not a YAML mapping, sending without player info")
	}
	return meta
}

type progressDocument struct {
	Gamer string `yaml:"gamer"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// ParseSubmitterMeta reads the player identification of a progress
// document. The gamer tag falls back to the player name and then to
// [UnknownGamer]; the e-mail is trimmed, lowercased and hashed.
//
// On a decoding error the returned meta still carries [UnknownGamer].
func ParseSubmitterMeta(body []byte) (models.SubmitterMeta, error) {
	meta := models.SubmitterMeta{Gamer: UnknownGamer}

	var doc progressDocument
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return meta, err
	}

	switch {
	case strings.TrimSpace(doc.Gamer) != "":
		meta.Gamer = strings.TrimSpace(doc.Gamer)
	case strings.TrimSpace(doc.Name) != "":
		meta.Gamer = strings.TrimSpace(doc.Name)
	}

	if email := strings.ToLower(strings.TrimSpace(doc.Email)); email != "" {
		meta.EmailHash = utils.DigestString(email)
	}

	return meta, nil
}
