package service

import "errors"

var (
	ErrSubmissionRefused    = errors.New("relay refused submission")
	ErrUnexpectedRelayReply = errors.New("unexpected relay reply")
	ErrRelayUnreachable     = errors.New("relay unreachable")
)
