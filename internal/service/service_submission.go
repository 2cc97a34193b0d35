// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/metrics"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/utils"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

// receivedAtLayout renders UTC times as ISO-8601 with milliseconds.
const receivedAtLayout = "2006-01-02T15:04:05.000Z"

type submissionService struct {
	dispatcher adapter.Dispatcher
	eventType  string

	now func() time.Time
}

// NewSubmissionService builds the core submission pipeline on top of
// dispatcher. Every dispatched event carries eventType.
func NewSubmissionService(dispatcher adapter.Dispatcher, eventType string) SubmissionService {
	return &submissionService{
		dispatcher: dispatcher,
		eventType:  eventType,
		now:        time.Now,
	}
}

func (s *submissionService) Relay(ctx context.Context, submission models.Submission) (models.Envelope, error) {
	if submission.IsBlank() {
		return models.FailureEnvelope(models.MessageEmptySubmission), nil
	}

	digest := utils.Digest(submission.Bytes())

	err := s.dispatcher.Dispatch(ctx, s.newEvent(submission, digest))
	if err != nil {
		var upstreamErr *adapter.UpstreamError
		if errors.As(err, &upstreamErr) {
			return models.RejectedEnvelope(upstreamErr.Body), nil
		}
		return models.Envelope{}, err
	}

	return models.SuccessEnvelope(digest), nil
}

func (s *submissionService) newEvent(submission models.Submission, digest string) models.DispatchEvent {
	return models.DispatchEvent{
		EventType: s.eventType,
		ClientPayload: models.ClientPayload{
			YAML:       submission.Body,
			ReceivedAt: s.now().UTC().Format(receivedAtLayout),
			SHA256:     digest,
		},
	}
}

// Outcome classifies a Relay result into one of the metrics outcome labels.
func Outcome(envelope models.Envelope, err error) string {
	switch {
	case err != nil:
		return metrics.OutcomeFailed
	case envelope.OK:
		return metrics.OutcomeDispatched
	case envelope.Error == models.MessageEmptySubmission:
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeRejected
	}
}
