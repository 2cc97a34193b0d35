package service

import (
	"context"
	"time"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/metrics"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

type SubmissionMetricsService struct {
	inner   SubmissionService
	metrics *metrics.Metrics
}

// NewSubmissionMetricsService returns a wrapper that counts submissions by
// outcome and observes the duration of the ones that were dispatched.
func NewSubmissionMetricsService(m *metrics.Metrics) SubmissionServiceWrapper {
	return &SubmissionMetricsService{metrics: m}
}

func (s *SubmissionMetricsService) Relay(ctx context.Context, submission models.Submission) (models.Envelope, error) {
	start := time.Now()
	envelope, err := s.inner.Relay(ctx, submission)

	outcome := Outcome(envelope, err)
	s.metrics.Submissions.WithLabelValues(outcome).Inc()
	if outcome != metrics.OutcomeEmpty {
		s.metrics.DispatchDuration.Observe(time.Since(start).Seconds())
	}

	return envelope, err
}

func (s *SubmissionMetricsService) Wrap(inner SubmissionService) SubmissionService {
	s.inner = inner
	return s
}
