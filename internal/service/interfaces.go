package service

import (
	"context"

	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SubmissionServiceWrapper

// SubmissionService turns one submission into one relay envelope.
type SubmissionService interface {
	// Relay hashes submission, dispatches it and maps the outcome.
	//
	// Blank submissions and upstream rejections are results: they return an
	// envelope with OK set to false and a nil error. Any other failure is
	// returned as an error and must be converted into a soft envelope by the
	// caller.
	Relay(ctx context.Context, submission models.Submission) (models.Envelope, error)
}

// SubmissionServiceWrapper defines middleware composition for
// SubmissionService. Implementations wrap an existing SubmissionService to
// add behavior such as logging or metrics.
type SubmissionServiceWrapper interface {
	Wrap(SubmissionService) SubmissionService // returns a decorated SubmissionService applying additional behavior
}
