package core

import "errors"

var (
	// ErrInvalidFile is returned when an upload item does not point at a readable regular file.
	ErrInvalidFile = errors.New("invalid file")
	// ErrInvalidTransition is returned when an upload is started for an item that is not idle.
	ErrInvalidTransition = errors.New("invalid upload status transition")
	// ErrNotFound is returned for unknown upload handles, indexes and presets.
	ErrNotFound = errors.New("not found")
	// ErrSuperseded is returned by a chart load that was replaced by a newer one.
	ErrSuperseded = errors.New("load superseded by a newer request")
)
