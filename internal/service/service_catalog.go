// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/internal/validators"
	"github.com/MKhiriev/data-catalog/models"
)

// catalogService is the default implementation of [CatalogService].
//
// Invalid types are reported as [ErrUnknownType]. Ids that are not
// canonical UUIDv4 strings are reported as store.ErrNotFound so an invalid
// id and a missing object look the same to callers.
type catalogService struct {
	storage   store.LocationStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewCatalogService(storage store.LocationStorage, validator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{
		storage:   storage,
		validator: validator,
		logger:    logger,
	}
}

func (s *catalogService) ListTypes(ctx context.Context) []map[string]string {
	types := models.LocationDataTypes()
	result := make([]map[string]string, 0, len(types))
	for _, t := range types {
		result = append(result, map[string]string{t.String(): "/" + t.String()})
	}
	return result
}

// List applies the filters in the order name, url, keys. The name filter
// works on the listing alone; the other two load each remaining object.
func (s *catalogService) List(ctx context.Context, dataType string, filter models.Filter) ([]models.ListEntry, error) {
	t, err := parseType(dataType)
	if err != nil {
		return nil, err
	}

	entries, err := s.storage.List(ctx, t)
	if err != nil {
		return nil, err
	}

	if filter.Name != "" {
		entries = slices.DeleteFunc(entries, func(e models.ListEntry) bool {
			return !strings.Contains(e.Name, filter.Name)
		})
	}

	if filter.URL != "" || len(filter.HasKeys) > 0 {
		kept := entries[:0]
		for _, e := range entries {
			data, err := s.storage.Get(ctx, t, e.ID)
			if err != nil {
				return nil, err
			}
			if filter.Matches(data) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	slices.SortFunc(entries, func(a, b models.ListEntry) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return entries, nil
}

func (s *catalogService) Add(ctx context.Context, dataType string, data models.LocationData, username string) (string, models.LocationData, error) {
	t, err := parseType(dataType)
	if err != nil {
		return "", models.LocationData{}, err
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return "", models.LocationData{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.storage.Add(ctx, t, data, username)
}

func (s *catalogService) Get(ctx context.Context, ref models.ObjectRef) (models.LocationData, error) {
	if err := s.validateRef(ctx, ref); err != nil {
		return models.LocationData{}, err
	}
	return s.storage.Get(ctx, ref.Type, ref.ID)
}

func (s *catalogService) Update(ctx context.Context, ref models.ObjectRef, data models.LocationData, username string) (string, models.LocationData, error) {
	if err := s.validateRef(ctx, ref); err != nil {
		return "", models.LocationData{}, err
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return "", models.LocationData{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.storage.Update(ctx, ref.Type, ref.ID, data, username)
}

func (s *catalogService) Delete(ctx context.Context, ref models.ObjectRef, username string) error {
	if err := s.validateRef(ctx, ref); err != nil {
		return err
	}
	return s.storage.Delete(ctx, ref.Type, ref.ID, username)
}

func (s *catalogService) ListSecrets(ctx context.Context, ref models.ObjectRef, username string) ([]string, error) {
	if err := s.validateRef(ctx, ref); err != nil {
		return nil, err
	}
	return s.storage.ListSecrets(ctx, ref.Type, ref.ID, username)
}

func (s *catalogService) GetSecrets(ctx context.Context, ref models.ObjectRef, username string) (map[string]string, error) {
	if err := s.validateRef(ctx, ref); err != nil {
		return nil, err
	}
	return s.storage.GetSecrets(ctx, ref.Type, ref.ID, username)
}

func (s *catalogService) PutSecret(ctx context.Context, ref models.ObjectRef, secret models.Secret, username string) error {
	if err := s.validateRef(ctx, ref); err != nil {
		return err
	}
	if err := s.validator.Validate(ctx, secret); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.storage.PutSecret(ctx, ref.Type, ref.ID, secret.Key, secret.Secret, username)
}

func (s *catalogService) GetSecret(ctx context.Context, ref models.ObjectRef, key, username string) (string, error) {
	if err := s.validateRef(ctx, ref); err != nil {
		return "", err
	}
	return s.storage.GetSecret(ctx, ref.Type, ref.ID, key, username)
}

func (s *catalogService) DeleteSecret(ctx context.Context, ref models.ObjectRef, key, username string) (string, error) {
	if err := s.validateRef(ctx, ref); err != nil {
		return "", err
	}
	return s.storage.DeleteSecret(ctx, ref.Type, ref.ID, key, username)
}

func (s *catalogService) validateRef(ctx context.Context, ref models.ObjectRef) error {
	if err := s.validator.Validate(ctx, ref, validators.FieldType); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownType, ref.Type)
	}
	if err := s.validator.Validate(ctx, ref, validators.FieldID); err != nil {
		logger.FromContext(ctx).Debug().Str("id", ref.ID).Msg("rejected malformed object id")
		return store.ErrNotFound
	}
	return nil
}

func parseType(dataType string) (models.LocationDataType, error) {
	t, err := models.ParseLocationDataType(dataType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, dataType)
	}
	return t, nil
}
