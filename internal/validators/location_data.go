package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldType targets the location data type of an object reference.
	FieldType = "type"

	// FieldID targets the object id of an object reference.
	FieldID = "id"

	// FieldName targets the human readable name of a location data record.
	FieldName = "name"

	// FieldMetadata targets the keys of the free-form metadata map.
	FieldMetadata = "metadata"

	// FieldSecretKey targets the key of a submitted secret.
	FieldSecretKey = "secret_key"
)

// LocationDataValidator implements [Validator] for catalog models:
// LocationData, ObjectRef and Secret, as values or pointers.
type LocationDataValidator struct{}

// NewLocationDataValidator constructs a LocationDataValidator and returns
// it as the Validator interface.
func NewLocationDataValidator() Validator {
	return &LocationDataValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else. When fields is empty every field of the model is
// validated.
func (v *LocationDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LocationData:
		return v.validateLocationData(value, fields...)
	case *models.LocationData:
		return v.validateLocationData(*value, fields...)

	case models.ObjectRef:
		return v.validateObjectRef(value, fields...)
	case *models.ObjectRef:
		return v.validateObjectRef(*value, fields...)

	case models.Secret:
		return v.validateSecret(value, fields...)
	case *models.Secret:
		return v.validateSecret(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LocationDataValidator) validateLocationData(data models.LocationData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldMetadata}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if data.Name == "" {
				return ErrEmptyName
			}
		case FieldMetadata:
			if _, ok := data.Metadata[""]; ok {
				return ErrEmptyMetadataKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LocationDataValidator) validateObjectRef(ref models.ObjectRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !slices.Contains(models.LocationDataTypes(), ref.Type) {
				return ErrInvalidType
			}
		case FieldID:
			if !store.ValidateID(ref.ID) {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LocationDataValidator) validateSecret(secret models.Secret, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSecretKey}
	}

	for _, f := range fields {
		switch f {
		case FieldSecretKey:
			if secret.Key == "" {
				return ErrEmptySecretKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
