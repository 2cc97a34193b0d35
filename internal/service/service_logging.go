package service

import (
	"context"
	"time"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
	"github.com/rs/zerolog"
)

type SubmissionLoggingService struct {
	inner  SubmissionService
	logger *logger.Logger
}

// NewSubmissionLoggingService returns a wrapper that logs every relayed
// submission with its digest, outcome and duration.
func NewSubmissionLoggingService(logger *logger.Logger) SubmissionServiceWrapper {
	return &SubmissionLoggingService{logger: logger}
}

func (s *SubmissionLoggingService) Relay(ctx context.Context, submission models.Submission) (models.Envelope, error) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = s.logger
	}

	start := time.Now()
	envelope, err := s.inner.Relay(ctx, submission)

	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	} else if !envelope.OK {
		event = log.Warn().Str("reason", envelope.Error)
	}

	if envelope.SHA256 != "" {
		event = event.Str("sha256", envelope.SHA256)
	}

	event.
		Int("size", len(submission.Body)).
		Str("outcome", Outcome(envelope, err)).
		Dur("duration", time.Since(start)).
		Msg("submission relayed")

	return envelope, err
}

func (s *SubmissionLoggingService) Wrap(inner SubmissionService) SubmissionService {
	s.inner = inner
	return s
}
