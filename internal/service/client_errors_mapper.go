// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
)

// mapAdapterError translates the relay client's transport error into a service error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrRelayRejected):
		return fmt.Errorf("%w: %w", ErrSubmissionRefused, err)
	case errors.Is(err, adapter.ErrInvalidRelayResponse):
		return fmt.Errorf("%w: %w", ErrUnexpectedRelayReply, err)
	default:
		return fmt.Errorf("%w: %w", ErrRelayUnreachable, err)
	}
}
