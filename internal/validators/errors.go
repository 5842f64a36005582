package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidType      = errors.New("invalid location data type")
	ErrInvalidID        = errors.New("invalid object id")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyMetadataKey = errors.New("metadata keys must not be empty")
	ErrEmptySecretKey   = errors.New("secret key is required")
)
