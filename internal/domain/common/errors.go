package common

import "errors"

var (
	// ErrInvalidInput marks an id that does not resolve or a missing/invalid field
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotLoaded is returned for every operation against an uninitialized tournament
	ErrNotLoaded = errors.New("tournament not loaded")
)
