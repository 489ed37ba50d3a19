package config

import "errors"

var (
	// ErrOptionNotFound is returned by Lookup when the option is absent.
	ErrOptionNotFound = errors.New("option not found")
	// ErrInvalidValue is returned when a raw value cannot be converted to the requested kind.
	ErrInvalidValue = errors.New("invalid option value")
	// ErrUnknownKind is returned when a kind name or Kind value is not recognised.
	ErrUnknownKind = errors.New("unknown option kind")
)
