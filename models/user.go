package models

// User is the public view of a catalog account.
type User struct {
	// Username is the unique and immutable identifier of the user. It is the
	// value recorded as owner of catalog objects.
	Username string `json:"username"`

	// Email is an optional contact address.
	Email string `json:"email,omitempty"`

	// HasSecretsAccess grants access to the secrets endpoints.
	HasSecretsAccess bool `json:"has_secrets_access"`
}

// UserInDB is the persisted form of [User], including the bcrypt hash of
// the user's password. It must never be returned to API callers.
type UserInDB struct {
	User
	HashedPassword string `json:"hashed_password"`
}
