package store

import "errors"

// Sentinel errors returned by the catalog storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when an object or secret does not exist, when
	// the id is not a canonical UUIDv4, or when the resolved path would
	// leave the data root. The three cases are deliberately reported the
	// same way.
	ErrNotFound = errors.New("object does not exist")

	// ErrConfiguration is returned by the constructor when the data root is
	// missing or not a directory, or when the encryption key is invalid.
	ErrConfiguration = errors.New("invalid storage configuration")

	// ErrSerialization is returned when a record or sidecar on disk is not
	// valid JSON of the expected shape. Such files are never repaired.
	ErrSerialization = errors.New("malformed stored object")

	// ErrDecryption is returned when a stored secret fails authentication
	// or decryption.
	ErrDecryption = errors.New("secret decryption failed")

	// ErrIDSpaceExhausted is returned when the id generator could not find
	// an unused id within its retry budget.
	ErrIDSpaceExhausted = errors.New("could not allocate a unique object id")
)

// User database errors.
var (
	// ErrUserAlreadyExists is returned when adding a username that is
	// already present in the user database.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a username is not present in the user
	// database.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUserDBCorrupted is returned when the user database file exists but
	// does not contain a JSON object of users.
	ErrUserDBCorrupted = errors.New("user database is corrupted")
)
