// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"unicode/utf8"
)

// MaxSubmissionSize is the largest submission body, in bytes, the relay
// accepts (64 KiB).
const MaxSubmissionSize = 65536

// Submission is the raw text body of a single relay request.
//
// A Submission lives only for the duration of one request and is never
// persisted.
type Submission struct {
	// Body holds the submitted document as valid UTF-8 text.
	Body string
}

const byteOrderMark = "\ufeff"

// NewSubmission decodes raw request bytes into a [Submission].
//
// Each invalid UTF-8 byte becomes U+FFFD and a single leading byte-order
// mark is dropped, so Body is exactly the text serialised into the
// dispatched event.
func NewSubmission(body []byte) Submission {
	if utf8.Valid(body) {
		return Submission{Body: strings.TrimPrefix(string(body), byteOrderMark)}
	}

	var b strings.Builder
	b.Grow(len(body))
	for _, r := range string(body) {
		b.WriteRune(r)
	}

	return Submission{Body: strings.TrimPrefix(b.String(), byteOrderMark)}
}

// IsBlank reports whether the submission is empty or consists of
// whitespace only.
func (s Submission) IsBlank() bool {
	return strings.TrimSpace(s.Body) == ""
}

// Bytes returns the submission body as a byte slice.
func (s Submission) Bytes() []byte {
	return []byte(s.Body)
}

// SubmitterMeta carries optional identification of the player sending a
// submission. It is attached to relay requests as informational headers.
type SubmitterMeta struct {
	// Gamer is the player's handle, "unknown" when none is present.
	Gamer string

	// EmailHash is the lowercase hex SHA-256 of the trimmed, lowercased
	// e-mail address, or empty when no address was provided.
	EmailHash string
}
