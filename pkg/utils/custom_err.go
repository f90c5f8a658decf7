package utils

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request body")
	ErrUpstreamFailure      = errors.New("model call failed")
	ErrUpstreamTimeout      = errors.New("model call timed out")
	ErrMalformedModelOutput = errors.New("model returned malformed output")
)
