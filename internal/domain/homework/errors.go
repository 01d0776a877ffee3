package homework

import "errors"

// Errors describing a malformed API body.
var (
	ErrTypeMismatch = errors.New("unexpected value type in API response")
	ErrMissingField = errors.New("required key missing from API response")
)

// Errors describing a malformed homework record.
var (
	ErrMissingStatus  = errors.New("homework has no status")
	ErrUnknownVerdict = errors.New("homework status has no known verdict")
	ErrMissingName    = errors.New("homework has no name")
)
