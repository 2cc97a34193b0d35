package service

import (
	"context"

	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSubmissionService defines the client-side contract for sending
// progress documents to the relay.
type ClientSubmissionService interface {
	// Submit posts body to the relay once, attaching the submitter
	// identification found in the document, and returns the relay's
	// envelope. An envelope with OK set to false is a result, not an error.
	// Errors describe transport failures and protocol rejections.
	Submit(ctx context.Context, body []byte) (models.Envelope, error)

	// Digest returns the digest the relay computes for body.
	Digest(body []byte) string
}
