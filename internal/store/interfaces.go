package store

import (
	"context"

	"github.com/MKhiriev/data-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocationStorage persists catalog objects and their secrets.
//
// It performs no authorization: the user/actor arguments are recorded as
// owners (Add) or written to the audit log only. Every method taking an id
// reports [ErrNotFound] for ids that are not canonical UUIDv4 strings.
type LocationStorage interface {
	// List returns the (name, id) pair of every object in the partition,
	// in no particular order.
	List(ctx context.Context, dataType models.LocationDataType) ([]models.ListEntry, error)

	// Add stores data under a freshly generated id with owner as its only
	// user and returns the id together with the stored data.
	Add(ctx context.Context, dataType models.LocationDataType, data models.LocationData, owner string) (string, models.LocationData, error)

	// Get returns the stored data of an object.
	Get(ctx context.Context, dataType models.LocationDataType, id string) (models.LocationData, error)

	// Update replaces the data of an existing object, keeping its users.
	Update(ctx context.Context, dataType models.LocationDataType, id string, data models.LocationData, actor string) (string, models.LocationData, error)

	// Delete removes an object and its secrets.
	Delete(ctx context.Context, dataType models.LocationDataType, id string, actor string) error

	// Owners returns the users recorded for an object.
	Owners(ctx context.Context, dataType models.LocationDataType, id string) ([]string, error)

	// ListSecrets returns the sorted secret keys of an object.
	ListSecrets(ctx context.Context, dataType models.LocationDataType, id string, actor string) ([]string, error)

	// GetSecrets returns all decrypted secrets of an object.
	GetSecrets(ctx context.Context, dataType models.LocationDataType, id string, actor string) (map[string]string, error)

	// PutSecret adds or replaces one secret.
	PutSecret(ctx context.Context, dataType models.LocationDataType, id, key, value string, actor string) error

	// GetSecret returns one decrypted secret.
	GetSecret(ctx context.Context, dataType models.LocationDataType, id, key string, actor string) (string, error)

	// DeleteSecret removes one secret and returns its decrypted value.
	DeleteSecret(ctx context.Context, dataType models.LocationDataType, id, key string, actor string) (string, error)
}

// UserRepository manages the JSON user database.
type UserRepository interface {
	// List returns all users sorted by username.
	List(ctx context.Context) ([]models.UserInDB, error)
	Get(ctx context.Context, username string) (models.UserInDB, error)
	Add(ctx context.Context, user models.UserInDB) error
	// Update replaces an existing user.
	Update(ctx context.Context, user models.UserInDB) error
	Delete(ctx context.Context, username string) error
}
