package models

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned on unique-constraint conflicts,
	// e.g. signing up with an email that is already registered.
	ErrAlreadyExists = errors.New("record already exists")
)
