// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP integrations of the relay.
//
// [Dispatcher] forwards a [models.DispatchEvent] to the repository-dispatch
// endpoint; [NewGitHubDispatcher] is its resty-based implementation.
// [RelayClient] is used by the command-line client to post submissions to a
// running relay.
//
// Error values defined in errors.go let callers tell an upstream rejection
// ([ErrDispatchRejected], carried by [*UpstreamError]) apart from transport
// failures with [errors.Is] and [errors.As].
package adapter

import (
	"context"

	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Dispatcher delivers a dispatch event to the repository-dispatch endpoint.
type Dispatcher interface {
	// Dispatch sends event once. It returns nil when the endpoint answered
	// with a 2xx status, an [*UpstreamError] for any other status, and a
	// wrapped transport error when no response was received.
	Dispatch(ctx context.Context, event models.DispatchEvent) error
}

// RelayClient submits documents to a running relay.
type RelayClient interface {
	// Submit posts submission to the relay with the submitter headers taken
	// from meta and returns the decoded envelope. A non-200 answer (405,
	// 413) is returned as an error wrapping [ErrRelayRejected].
	Submit(ctx context.Context, submission models.Submission, meta models.SubmitterMeta) (models.Envelope, error)
}
