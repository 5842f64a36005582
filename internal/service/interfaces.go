package service

import (
	"context"

	"github.com/MKhiriev/data-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CatalogService exposes catalog objects and their secrets to transports.
// It validates its input and delegates persistence to store.LocationStorage.
type CatalogService interface {
	// ListTypes returns one {"<type>": "/<type>"} entry per location data type.
	ListTypes(ctx context.Context) []map[string]string

	// List returns the objects of a type matching filter, sorted by name and
	// then id.
	List(ctx context.Context, dataType string, filter models.Filter) ([]models.ListEntry, error)

	Add(ctx context.Context, dataType string, data models.LocationData, username string) (string, models.LocationData, error)
	Get(ctx context.Context, ref models.ObjectRef) (models.LocationData, error)
	Update(ctx context.Context, ref models.ObjectRef, data models.LocationData, username string) (string, models.LocationData, error)
	Delete(ctx context.Context, ref models.ObjectRef, username string) error

	ListSecrets(ctx context.Context, ref models.ObjectRef, username string) ([]string, error)
	GetSecrets(ctx context.Context, ref models.ObjectRef, username string) (map[string]string, error)
	PutSecret(ctx context.Context, ref models.ObjectRef, secret models.Secret, username string) error
	GetSecret(ctx context.Context, ref models.ObjectRef, key, username string) (string, error)
	DeleteSecret(ctx context.Context, ref models.ObjectRef, key, username string) (string, error)
}

// AuthService authenticates users of the JSON user database and manages
// their access tokens.
type AuthService interface {
	// Authenticate checks username and password and returns the public
	// view of the user.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken validates a token and returns the user it was issued for.
	ParseToken(ctx context.Context, tokenString string) (models.User, error)
	// HashPassword returns the bcrypt hash stored for a password.
	HashPassword(password string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
