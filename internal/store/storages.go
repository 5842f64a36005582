package store

import (
	"fmt"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
)

// Storages groups every persistence component the server needs.
type Storages struct {
	LocationStorage LocationStorage
	UserRepository  UserRepository
}

// NewStorages builds the catalog storage and the user database from cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	locations, err := NewLocationStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating location storage: %w", err)
	}

	users, err := NewUserRepository(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating user repository: %w", err)
	}

	return &Storages{
		LocationStorage: locations,
		UserRepository:  users,
	}, nil
}
