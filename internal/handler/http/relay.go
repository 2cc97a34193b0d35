// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/utils"
	"github.com/InfraForgeLabs/devopsmind-relay/models"
)

// relay accepts one submission and answers with its envelope.
//
// Only protocol violations produce a non-200 status: a body larger than
// [models.MaxSubmissionSize] is refused with 413. Everything else, including
// dispatch failures, is reported through the envelope.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if r.ContentLength > models.MaxSubmissionSize {
		log.Debug().Int64("content_length", r.ContentLength).Msg("declared body too large")
		writePayloadTooLarge(w, r)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, models.MaxSubmissionSize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Debug().Int64("limit", maxBytesErr.Limit).Msg("streamed body too large")
			writePayloadTooLarge(w, r)
			return
		}

		log.Error().Err(err).Msg("error reading submission body")
		writeEnvelope(w, r, models.FailureEnvelope(err.Error()))
		return
	}

	log.Debug().
		Str("gamer", r.Header.Get(adapter.HeaderGamer)).
		Str("email_hash", r.Header.Get(adapter.HeaderEmailHash)).
		Int("size", len(body)).
		Msg("submission received")

	// a client hanging up must not abort a dispatch already under way
	envelope, err := h.services.SubmissionService.Relay(context.WithoutCancel(r.Context()), models.NewSubmission(body))
	if err != nil {
		envelope = models.FailureEnvelope(err.Error())
	}

	writeEnvelope(w, r, envelope)
}

// preflight answers CORS preflight requests; the headers are set by withCORS.
func (h *Handler) preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// rejectMethod answers every method other than POST and OPTIONS.
func rejectMethod(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.ErrorResponse{Error: models.MessageMethodNotAllowed}, http.StatusMethodNotAllowed)
}

func writePayloadTooLarge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.ErrorResponse{Error: models.MessagePayloadTooLarge}, http.StatusRequestEntityTooLarge)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, envelope models.Envelope) {
	writeJSON(w, r, envelope, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing response")
	}
}
