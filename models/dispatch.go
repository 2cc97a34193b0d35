// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultEventType is the repository-dispatch event type emitted for every
// player submission.
const DefaultEventType = "player_submission"

// DispatchEvent is the JSON document posted to the repository-dispatch
// endpoint. It is built fresh for every accepted submission.
type DispatchEvent struct {
	// EventType names the workflow trigger on the receiving repository.
	EventType string `json:"event_type"`

	// ClientPayload carries the submission and its integrity data.
	ClientPayload ClientPayload `json:"client_payload"`
}

// ClientPayload is the free-form payload forwarded with a [DispatchEvent].
type ClientPayload struct {
	// YAML is the submission body, verbatim.
	YAML string `json:"yaml"`

	// ReceivedAt is the ISO-8601 UTC time the relay accepted the submission,
	// with millisecond precision (e.g. "2026-01-02T03:04:05.678Z").
	ReceivedAt string `json:"received_at"`

	// SHA256 is the lowercase hex SHA-256 digest of YAML.
	SHA256 string `json:"sha256"`
}
