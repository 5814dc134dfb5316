package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyInput         = errors.New("input text is empty")
	ErrMalformedResponse  = errors.New("classifier response is malformed")
	ErrAmbiguousTiming    = errors.New("no usable event time")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrSubmissionRejected = errors.New("calendar rejected the event")
	ErrUnauthenticated    = errors.New("calendar credential unavailable")
)
