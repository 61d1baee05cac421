package models

import "errors"

// ErrValidation marks malformed input to a public operation. Callers map it
// to a 400; it is never retried or silently corrected.
var ErrValidation = errors.New("validation failed")
