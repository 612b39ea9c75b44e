package service

import "errors"

var (
	// ErrEntryNotFound is returned when the referenced entry does not exist.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrValidation is returned when a required field is missing; the
	// offending field is wrapped in.
	ErrValidation = errors.New("missing required field")
	// ErrVersionMismatch is returned when a caller supplies a stale expected
	// version for an update.
	ErrVersionMismatch = errors.New("entry was modified by someone else, please refresh")
)
