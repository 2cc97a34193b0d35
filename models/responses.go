// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Messages placed into the error field of relay responses.
const (
	MessageMethodNotAllowed = "Method not allowed"
	MessagePayloadTooLarge  = "Payload too large (max 64 KiB)"
	MessageEmptySubmission  = "Empty submission"
	MessageDispatchFailed   = "GitHub dispatch failed"
	MessageUnknownFailure   = "Unknown error"
)

// Envelope is the uniform JSON result returned for every accepted relay
// request, successful or not.
//
// OK is always serialised. SHA256 is set only on success, Error only on
// failure, and Body only when the dispatch endpoint rejected the event.
type Envelope struct {
	// OK reports whether the dispatch endpoint accepted the event.
	OK bool `json:"ok"`

	// SHA256 is the hex digest of the submission.
	SHA256 string `json:"sha256,omitempty"`

	// Error is a short human-readable failure reason.
	Error string `json:"error,omitempty"`

	// Body is the dispatch endpoint's response text, passed through verbatim.
	// A pointer keeps an empty upstream body visible as "body": "".
	Body *string `json:"body,omitempty"`
}

// SuccessEnvelope builds the envelope for a dispatched submission.
func SuccessEnvelope(sha256 string) Envelope {
	return Envelope{OK: true, SHA256: sha256}
}

// FailureEnvelope builds a soft-failure envelope carrying message. An empty
// message is replaced with [MessageUnknownFailure] so the error field is
// never omitted.
func FailureEnvelope(message string) Envelope {
	if message == "" {
		message = MessageUnknownFailure
	}

	return Envelope{OK: false, Error: message}
}

// RejectedEnvelope builds the envelope for a submission the dispatch
// endpoint refused, echoing the endpoint's response text.
func RejectedEnvelope(upstreamBody string) Envelope {
	return Envelope{OK: false, Error: MessageDispatchFailed, Body: &upstreamBody}
}

// ErrorResponse is the body of protocol-level rejections (405, 413).
type ErrorResponse struct {
	Error string `json:"error"`
}
