package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/data-catalog/internal/config"
	myHTTP "github.com/MKhiriev/data-catalog/internal/handler/http"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/service"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func startCatalog(t *testing.T) (*httptest.Server, store.LocationStorage) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.StructuredConfig{
		App:     config.App{TokenSignKey: "k", TokenIssuer: "data-catalog", TokenDuration: time.Hour, Version: "test"},
		Storage: config.Storage{DataDir: dir, UserDBPath: filepath.Join(dir, "userdb.json")},
	}
	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, storages.UserRepository.Add(context.Background(), models.UserInDB{
		User:           models.User{Username: "uploader"},
		HashedPassword: string(hash),
	}))

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(myHTTP.NewHandler(services, cfg.Server, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv, storages.LocationStorage
}

func writeItems(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runUploadCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewUploadCommand(&out, logger.Nop())
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUpload_AddThenUpdate(t *testing.T) {
	srv, storage := startCatalog(t)
	file := writeItems(t, `[{"name":"a","url":"s3://a"},{"name":"b","url":"s3://b"}]`)

	out, err := runUploadCmd(t, "pw\n", "-s", srv.URL, "-u", "uploader", "-f", file)
	require.NoError(t, err)
	assert.Contains(t, out, "sent a -> ")
	assert.Contains(t, out, "sent b -> ")

	file = writeItems(t, `[{"name":"a","url":"s3://a-v2"}]`)
	out, err = runUploadCmd(t, "", "-s", srv.URL, "-u", "uploader", "-p", "pw", "-f", file)
	require.NoError(t, err)
	assert.Contains(t, out, "a is already on server")

	entries, err := storage.List(context.Background(), models.Dataset)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		if e.Name != "a" {
			continue
		}
		data, err := storage.Get(context.Background(), models.Dataset, e.ID)
		require.NoError(t, err)
		assert.Equal(t, "s3://a-v2", data.URL)
	}
}

func TestUpload_Failures(t *testing.T) {
	srv, _ := startCatalog(t)
	good := writeItems(t, `[{"name":"a"}]`)

	tests := []struct {
		name  string
		stdin string
		args  []string
		check func(t *testing.T, err error)
	}{
		{
			name: "wrong password",
			args: []string{"-s", srv.URL, "-u", "uploader", "-p", "nope", "-f", good},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "unable to authenticate")
			},
		},
		{
			name: "no password anywhere",
			args: []string{"-s", srv.URL, "-u", "uploader", "-f", good},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUsage)
			},
		},
		{
			name: "unknown type",
			args: []string{"-s", srv.URL, "-u", "uploader", "-p", "pw", "-f", good, "-t", "buckets"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUsage)
			},
		},
		{
			name: "not an array",
			args: []string{"-s", srv.URL, "-u", "uploader", "-p", "pw", "-f", writeItems(t, `{"name":"a"}`)},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "JSON array")
			},
		},
		{
			name: "invalid item",
			args: []string{"-s", srv.URL, "-u", "uploader", "-p", "pw", "-f", writeItems(t, `[{"url":"no name"}]`)},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "1 of 1 objects failed")
			},
		},
	}

	t.Setenv(passwordEnv, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runUploadCmd(t, tt.stdin, tt.args...)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestResolvePassword(t *testing.T) {
	t.Setenv(passwordEnv, "from-env")

	got, err := resolvePassword("from-flag", strings.NewReader("from-stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", got)

	got, err = resolvePassword("", strings.NewReader("from-stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)

	t.Setenv(passwordEnv, "")
	got, err = resolvePassword("", strings.NewReader("from-stdin\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", got)
}

