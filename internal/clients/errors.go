package clients

import "errors"

// ErrUpstreamStatus marks a backend response with an unexpected status code.
var ErrUpstreamStatus = errors.New("unexpected upstream status")
