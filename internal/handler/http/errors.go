package http

import "errors"

// ErrInvalidJSON is reported when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON was passed")
