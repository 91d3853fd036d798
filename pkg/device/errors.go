package device

import "errors"

var (
	// ErrNotFound indicates a device was not found
	ErrNotFound = errors.New("device not found")

	// ErrDuplicateKey indicates a device with the same key is already registered
	ErrDuplicateKey = errors.New("device key already registered")

	// ErrInvalidKey indicates an empty or otherwise unusable device key
	ErrInvalidKey = errors.New("invalid device key")

	// ErrUnsupported indicates a device lacks a required capability
	ErrUnsupported = errors.New("capability not supported")
)
