// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/crypto"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/models"
)

// locationFileStorage is the file-based implementation of
// [LocationStorage].
//
// Layout under the data root:
//
//	<type>/<id>          {"actualData": {...}, "users": [...]}
//	<type>/<id>.secrets  {"<key>": "<value or ciphertext>", ...}
//
// Every write goes through [writeFileAtomic]; read-modify-write cycles on
// one object are serialized by a striped lock.
type locationFileStorage struct {
	paths  *pathGuard
	ids    *idGenerator
	cipher crypto.SecretsCipher
	locks  stripedLocks
	logger *logger.Logger
}

// NewLocationStorage constructs a [LocationStorage] rooted at cfg.DataDir.
//
// The data directory must already exist. A non-empty cfg.EncryptionKey
// turns on at-rest encryption of secret values; an invalid key is a
// configuration error and never falls back to plaintext. Both failures wrap
// [ErrConfiguration].
func NewLocationStorage(cfg config.Storage, logger *logger.Logger) (LocationStorage, error) {
	cipher, err := crypto.NewSecretsCipher(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	storage, err := newLocationFileStorage(cfg.DataDir, cipher, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("data_dir", storage.paths.root).
		Bool("encrypted_secrets", cfg.EncryptionKey != "").
		Msg("location file storage initialized")
	return storage, nil
}

func newLocationFileStorage(dataDir string, cipher crypto.SecretsCipher, logger *logger.Logger) (*locationFileStorage, error) {
	paths, err := newPathGuard(dataDir, logger)
	if err != nil {
		return nil, err
	}

	return &locationFileStorage{
		paths:  paths,
		ids:    newIDGenerator(paths.exists),
		cipher: cipher,
		logger: logger,
	}, nil
}

func (s *locationFileStorage) List(ctx context.Context, dataType models.LocationDataType) ([]models.ListEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := s.paths.ensurePartition(dataType.String())
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read partition %s: %w", dataType, err)
	}

	result := make([]models.ListEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, secretsSuffix) || IsTempFile(name) || !ValidateID(name) {
			continue
		}

		path, err := s.paths.resolve(dataType.String(), name)
		if err != nil {
			// directories, dangling links and escapes are not objects
			continue
		}

		stored, err := readRecord(path)
		if err != nil {
			return nil, err
		}
		result = append(result, models.ListEntry{Name: stored.ActualData.Name, ID: name})
	}

	s.logger.Debug().Str("type", dataType.String()).Int("count", len(result)).Msg("listed objects")
	return result, nil
}

func (s *locationFileStorage) Add(ctx context.Context, dataType models.LocationDataType, data models.LocationData, owner string) (string, models.LocationData, error) {
	if err := ctx.Err(); err != nil {
		return "", models.LocationData{}, err
	}

	dir, err := s.paths.ensurePartition(dataType.String())
	if err != nil {
		return "", models.LocationData{}, err
	}

	id, err := s.ids.generate(dataType.String())
	if err != nil {
		s.logger.Error().Err(err).Str("type", dataType.String()).Msg("id generation failed")
		return "", models.LocationData{}, err
	}

	unlock := s.locks.lock(dataType.String(), id)
	defer unlock()

	stored := models.StoredData{ActualData: data, Users: []string{owner}}
	if err := writeRecord(filepath.Join(dir, id), stored); err != nil {
		return "", models.LocationData{}, err
	}

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", owner).Msg("added object")
	return id, data, nil
}

func (s *locationFileStorage) Get(ctx context.Context, dataType models.LocationDataType, id string) (models.LocationData, error) {
	stored, err := s.load(ctx, dataType, id)
	if err != nil {
		return models.LocationData{}, err
	}

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Msg("returned object")
	return stored.ActualData, nil
}

func (s *locationFileStorage) Owners(ctx context.Context, dataType models.LocationDataType, id string) ([]string, error) {
	stored, err := s.load(ctx, dataType, id)
	if err != nil {
		return nil, err
	}
	return stored.Users, nil
}

func (s *locationFileStorage) Update(ctx context.Context, dataType models.LocationDataType, id string, data models.LocationData, actor string) (string, models.LocationData, error) {
	if err := s.precheck(ctx, id); err != nil {
		return "", models.LocationData{}, err
	}

	unlock := s.locks.lock(dataType.String(), id)
	defer unlock()

	path, err := s.paths.resolve(dataType.String(), id)
	if err != nil {
		return "", models.LocationData{}, err
	}

	stored, err := readRecord(path)
	if err != nil {
		return "", models.LocationData{}, err
	}

	stored.ActualData = data
	if err := writeRecord(path, stored); err != nil {
		return "", models.LocationData{}, err
	}

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("updated object")
	return id, data, nil
}

func (s *locationFileStorage) Delete(ctx context.Context, dataType models.LocationDataType, id string, actor string) error {
	if err := s.precheck(ctx, id); err != nil {
		return err
	}

	unlock := s.locks.lock(dataType.String(), id)
	defer unlock()

	path, err := s.paths.resolve(dataType.String(), id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove object: %w", err)
	}
	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("deleted object")

	sidecar := path + secretsSuffix
	if err := os.Remove(sidecar); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove secrets: %w", err)
	} else if err == nil {
		s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("deleted object secrets")
	}

	return nil
}

func (s *locationFileStorage) ListSecrets(ctx context.Context, dataType models.LocationDataType, id string, actor string) ([]string, error) {
	secrets, _, err := s.loadSecrets(ctx, dataType, id)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(secrets))
	for k := range secrets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("listed secrets")
	return keys, nil
}

func (s *locationFileStorage) GetSecrets(ctx context.Context, dataType models.LocationDataType, id string, actor string) (map[string]string, error) {
	secrets, _, err := s.loadSecrets(ctx, dataType, id)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(secrets))
	for k, v := range secrets {
		plain, err := s.decrypt(dataType, id, k, v)
		if err != nil {
			return nil, err
		}
		result[k] = plain
	}

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("retrieved secret values")
	return result, nil
}

func (s *locationFileStorage) PutSecret(ctx context.Context, dataType models.LocationDataType, id, key, value string, actor string) error {
	if err := s.precheck(ctx, id); err != nil {
		return err
	}

	unlock := s.locks.lock(dataType.String(), id)
	defer unlock()

	path, secrets, err := s.readSecretsLocked(dataType, id)
	if err != nil {
		return err
	}

	sealed, err := s.cipher.Encrypt(value, secretScope(dataType, id, key))
	if err != nil {
		return fmt.Errorf("encrypt secret: %w", err)
	}
	secrets[key] = sealed

	if err := writeSecrets(path, secrets); err != nil {
		return err
	}

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("stored secret")
	return nil
}

func (s *locationFileStorage) GetSecret(ctx context.Context, dataType models.LocationDataType, id, key string, actor string) (string, error) {
	secrets, _, err := s.loadSecrets(ctx, dataType, id)
	if err != nil {
		return "", err
	}

	sealed, ok := secrets[key]
	if !ok {
		return "", ErrNotFound
	}

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("retrieved secret")
	return s.decrypt(dataType, id, key, sealed)
}

func (s *locationFileStorage) DeleteSecret(ctx context.Context, dataType models.LocationDataType, id, key string, actor string) (string, error) {
	if err := s.precheck(ctx, id); err != nil {
		return "", err
	}

	unlock := s.locks.lock(dataType.String(), id)
	defer unlock()

	path, secrets, err := s.readSecretsLocked(dataType, id)
	if err != nil {
		return "", err
	}

	sealed, ok := secrets[key]
	if !ok {
		return "", ErrNotFound
	}

	value, err := s.decrypt(dataType, id, key, sealed)
	if err != nil {
		return "", err
	}

	delete(secrets, key)
	if err := writeSecrets(path, secrets); err != nil {
		return "", err
	}

	s.logger.Debug().Str("type", dataType.String()).Str("id", id).Str("user", actor).Msg("deleted secret")
	return value, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (s *locationFileStorage) precheck(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ValidateID(id) {
		return ErrNotFound
	}
	return nil
}

func (s *locationFileStorage) load(ctx context.Context, dataType models.LocationDataType, id string) (models.StoredData, error) {
	if err := s.precheck(ctx, id); err != nil {
		return models.StoredData{}, err
	}

	path, err := s.paths.resolve(dataType.String(), id)
	if err != nil {
		return models.StoredData{}, err
	}
	return readRecord(path)
}

func (s *locationFileStorage) loadSecrets(ctx context.Context, dataType models.LocationDataType, id string) (map[string]string, bool, error) {
	if err := s.precheck(ctx, id); err != nil {
		return nil, false, err
	}

	path, err := s.paths.resolve(dataType.String(), id)
	if err != nil {
		return nil, false, err
	}

	sidecar, present, err := s.paths.sidecar(path)
	if err != nil {
		return nil, false, err
	}
	if !present {
		return map[string]string{}, false, nil
	}
	return readSecrets(sidecar)
}

// readSecretsLocked resolves the record and loads its sidecar for a
// modification. The caller must hold the object's stripe lock.
func (s *locationFileStorage) readSecretsLocked(dataType models.LocationDataType, id string) (string, map[string]string, error) {
	path, err := s.paths.resolve(dataType.String(), id)
	if err != nil {
		return "", nil, err
	}

	sidecar, present, err := s.paths.sidecar(path)
	if err != nil {
		return "", nil, err
	}
	if !present {
		return sidecar, map[string]string{}, nil
	}

	secrets, _, err := readSecrets(sidecar)
	if err != nil {
		return "", nil, err
	}
	return sidecar, secrets, nil
}

func (s *locationFileStorage) decrypt(dataType models.LocationDataType, id, key, sealed string) (string, error) {
	plain, err := s.cipher.Decrypt(sealed, secretScope(dataType, id, key))
	if err != nil {
		s.logger.Error().Err(err).Str("type", dataType.String()).Str("id", id).Msg("secret could not be decrypted")
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	return plain, nil
}

func secretScope(dataType models.LocationDataType, id, key string) string {
	return dataType.String() + "/" + id + "/" + key
}

func readRecord(path string) (models.StoredData, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.StoredData{}, ErrNotFound
	}
	if err != nil {
		return models.StoredData{}, fmt.Errorf("read object: %w", err)
	}

	var stored models.StoredData
	if err := json.Unmarshal(data, &stored); err != nil {
		return models.StoredData{}, fmt.Errorf("%w: %s: %v", ErrSerialization, filepath.Base(path), err)
	}
	return stored, nil
}

func writeRecord(path string, stored models.StoredData) error {
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := writeFileAtomic(path, data, 0o640); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}
