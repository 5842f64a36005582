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
	"sync"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/models"
)

// userJSONRepository is the JSON-file implementation of [UserRepository].
// The whole file is a single object mapping usernames to users and is
// rewritten atomically on every change.
type userJSONRepository struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewUserRepository opens the user database at cfg.UserDBPath. A missing
// file is created holding an empty object; an existing one must parse,
// otherwise [ErrUserDBCorrupted] is returned.
func NewUserRepository(cfg config.Storage, logger *logger.Logger) (UserRepository, error) {
	logger.Debug().Str("path", cfg.UserDBPath).Msg("creating user repository")

	repo := &userJSONRepository{path: cfg.UserDBPath, logger: logger}

	info, err := os.Stat(cfg.UserDBPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(cfg.UserDBPath), 0o750); err != nil {
			return nil, fmt.Errorf("create user database directory: %w", err)
		}
		if err := repo.save(map[string]models.UserInDB{}); err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.UserDBPath).Msg("created empty user database")
	case err != nil:
		return nil, fmt.Errorf("stat user database: %w", err)
	case !info.Mode().IsRegular():
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrUserDBCorrupted, cfg.UserDBPath)
	default:
		if _, err := repo.load(); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

func (r *userJSONRepository) List(ctx context.Context) ([]models.UserInDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]models.UserInDB, 0, len(users))
	for _, u := range users {
		result = append(result, u)
	}
	slices.SortFunc(result, func(a, b models.UserInDB) int {
		return strings.Compare(a.Username, b.Username)
	})
	return result, nil
}

func (r *userJSONRepository) Get(ctx context.Context, username string) (models.UserInDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return models.UserInDB{}, err
	}

	user, ok := users[username]
	if !ok {
		return models.UserInDB{}, ErrUserNotFound
	}
	return user, nil
}

func (r *userJSONRepository) Add(ctx context.Context, user models.UserInDB) error {
	return r.modify(ctx, user.Username, func(users map[string]models.UserInDB) error {
		if _, ok := users[user.Username]; ok {
			return ErrUserAlreadyExists
		}
		users[user.Username] = user
		return nil
	})
}

func (r *userJSONRepository) Update(ctx context.Context, user models.UserInDB) error {
	return r.modify(ctx, user.Username, func(users map[string]models.UserInDB) error {
		if _, ok := users[user.Username]; !ok {
			return ErrUserNotFound
		}
		users[user.Username] = user
		return nil
	})
}

func (r *userJSONRepository) Delete(ctx context.Context, username string) error {
	return r.modify(ctx, username, func(users map[string]models.UserInDB) error {
		if _, ok := users[username]; !ok {
			return ErrUserNotFound
		}
		delete(users, username)
		return nil
	})
}

func (r *userJSONRepository) modify(ctx context.Context, username string, change func(map[string]models.UserInDB) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	if err := change(users); err != nil {
		return err
	}
	if err := r.save(users); err != nil {
		return err
	}

	r.logger.Debug().Str("user", username).Msg("user database updated")
	return nil
}

func (r *userJSONRepository) load() (map[string]models.UserInDB, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read user database: %w", err)
	}

	var users map[string]models.UserInDB
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserDBCorrupted, err)
	}
	if users == nil {
		users = map[string]models.UserInDB{}
	}
	return users, nil
}

func (r *userJSONRepository) save(users map[string]models.UserInDB) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user database: %w", err)
	}
	if err := writeFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write user database: %w", err)
	}
	return nil
}
