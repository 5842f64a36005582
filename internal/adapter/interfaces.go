// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the data catalog HTTP API.
//
// [CatalogClient] hides routes, serialisation and bearer token handling.
// HTTP error statuses are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrForbidden]
// for a user without secrets access).
package adapter

import (
	"context"

	"github.com/MKhiriev/data-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_client_mock.go -package=mock

// CatalogClient talks to a data catalog server.
type CatalogClient interface {
	// Login exchanges username and password for a bearer token and stores
	// it for all later requests.
	Login(ctx context.Context, username, password string) error

	// SetToken stores a bearer token obtained elsewhere.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	List(ctx context.Context, dataType models.LocationDataType, filter models.Filter) ([]models.ListEntry, error)
	Get(ctx context.Context, dataType models.LocationDataType, id string) (models.LocationData, error)
	// Add returns the id assigned by the server.
	Add(ctx context.Context, dataType models.LocationDataType, data models.LocationData) (string, error)
	Update(ctx context.Context, dataType models.LocationDataType, id string, data models.LocationData) error
	Delete(ctx context.Context, dataType models.LocationDataType, id string) error

	PutSecret(ctx context.Context, dataType models.LocationDataType, id string, secret models.Secret) error
	GetSecret(ctx context.Context, dataType models.LocationDataType, id, key string) (string, error)
}
