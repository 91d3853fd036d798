package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
)

// Config represents the complete runtime configuration loaded from the database.
type Config struct {
	Profile   *Profile
	APIServer *APIServer
	Rooms     []*Room
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return net.JoinHostPort(DefaultHost, strconv.Itoa(DefaultPort))
	}
	return c.APIServer.Address()
}

// BasePath returns the path room routes are mounted under.
func (c *Config) BasePath() string {
	if c.Profile == nil || c.Profile.BasePath == "" {
		return DefaultBasePath
	}
	return c.Profile.BasePath
}

// ActiveConfig loads the complete configuration for the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{Profile: profile}

	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	rooms, err := db.Rooms().List(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	config.Rooms = rooms

	return config, nil
}
