package model

import "errors"

// ErrInvalidInput marks trip parameters outside their legal range. Surfaces
// wrap it with the offending field so callers can match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
