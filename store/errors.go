package store

import "errors"

// Error kinds shared by every store. Callers classify failures with
// errors.Is; the HTTP layer maps them to status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
)
