package domain

import "errors"

var (
	// ErrInvalidAction is returned for an action label outside the known set
	ErrInvalidAction = errors.New("invalid action")
	// ErrNotFound is returned when a word position or audio does not exist
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when the backing store cannot be reached
	ErrUnavailable = errors.New("storage unavailable")
)
