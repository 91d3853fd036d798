package config

import "errors"

var (
	// ErrInvalid indicates a room configuration failed schema or semantic validation
	ErrInvalid = errors.New("invalid room configuration")

	// ErrEmpty indicates an empty configuration document
	ErrEmpty = errors.New("empty room configuration")
)
