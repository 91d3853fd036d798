package db

import "errors"

var (
	// ErrNoActiveProfile indicates no profile is marked active
	ErrNoActiveProfile = errors.New("no active profile found")

	// ErrProfileNotFound indicates a profile was not found
	ErrProfileNotFound = errors.New("profile not found")

	// ErrAPIServerNotFound indicates a profile has no API server settings
	ErrAPIServerNotFound = errors.New("api server config not found")

	// ErrRoomNotFound indicates a room configuration was not found
	ErrRoomNotFound = errors.New("room not found")
)
