package interfaces

import "errors"

// Repositories return these when a conditional write does not apply.
// Usecases treat ErrConditionFailed as "state changed under us": re-read and retry or report a conflict.
var (
	ErrConditionFailed = errors.New("conditional write failed")
	ErrAlreadyExists   = errors.New("item already exists")
)
