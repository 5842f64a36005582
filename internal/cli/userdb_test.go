package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func runUserDB(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewUserDBCommand(&out, logger.Nop())
	cmd.SetArgs(append(args, "-f", path))
	err := cmd.Execute()
	return out.String(), err
}

func TestUserDB_AddShowList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdb.json")

	_, err := runUserDB(t, path, "add", "-u", "alice", "-m", "alice@example.com", "-p", "pw", "-s")
	require.NoError(t, err)
	_, err = runUserDB(t, path, "add", "-u", "bob", "-m", "bob@example.com", "-b", "$2a$10$precomputed")
	require.NoError(t, err)

	out, err := runUserDB(t, path, "ls")
	require.NoError(t, err)
	assert.Equal(t, "alice\nbob\n", out)

	out, err = runUserDB(t, path, "show", "-u", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, `"has_secrets_access": true`)

	repo, err := store.NewUserRepository(config.Storage{UserDBPath: path}, logger.Nop())
	require.NoError(t, err)
	alice, err := repo.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.HashedPassword), []byte("pw")))

	bob, err := repo.Get(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$precomputed", bob.HashedPassword)
	assert.False(t, bob.HasSecretsAccess)
}

func TestUserDB_AddDuplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdb.json")

	_, err := runUserDB(t, path, "add", "-u", "alice", "-m", "a@x", "-b", "h")
	require.NoError(t, err)
	_, err = runUserDB(t, path, "add", "-u", "alice", "-m", "a@x", "-b", "h")
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestUserDB_UsageErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdb.json")

	tests := []struct {
		name string
		args []string
	}{
		{"hash without password", []string{"hash"}},
		{"add without username", []string{"add", "-m", "m", "-p", "p"}},
		{"add without mail", []string{"add", "-u", "u", "-p", "p"}},
		{"add without secret", []string{"add", "-u", "u", "-m", "m"}},
		{"show without username", []string{"show"}},
		{"rm without username", []string{"rm"}},
		{"give_secret without username", []string{"give_secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runUserDB(t, path, tt.args...)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestUserDB_SecretAccessAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdb.json")

	_, err := runUserDB(t, path, "add", "-u", "carol", "-m", "c@x", "-b", "h")
	require.NoError(t, err)

	out, err := runUserDB(t, path, "give_secret", "-u", "carol")
	require.NoError(t, err)
	assert.Contains(t, out, `"has_secrets_access": true`)

	out, err = runUserDB(t, path, "remove_secret", "-u", "carol")
	require.NoError(t, err)
	assert.Contains(t, out, `"has_secrets_access": false`)

	_, err = runUserDB(t, path, "delete", "-u", "carol")
	require.NoError(t, err)

	_, err = runUserDB(t, path, "show", "-u", "carol")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = runUserDB(t, path, "give_secret", "-u", "carol")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserDB_Hash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdb.json")

	out, err := runUserDB(t, path, "hash", "-p", "secret")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
}

func TestUserDB_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdb.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := runUserDB(t, path, "ls")
	assert.ErrorIs(t, err, store.ErrUserDBCorrupted)
}
