package gateway

import "errors"

// ErrNotFound is returned when the upstream service has no record for the request.
var ErrNotFound = errors.New("not found")

// ErrUpstream is returned when the upstream service answers with a non-success status.
var ErrUpstream = errors.New("upstream error")
