package client

import "errors"

var ErrSubmissionsFailed = errors.New("some submissions were not accepted")
