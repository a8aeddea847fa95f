package services

import "errors"

// Domain error taxonomy. Controllers map ErrNotFound to 404 and
// ErrInvalidArgument to 400; anything else is unexpected.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)
