package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/mock"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/internal/utils"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "data-catalog-test",
	TokenDuration: time.Hour,
}

func newTestAuth(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig, logger.Nop()), repo
}

func hashedUser(t *testing.T, name, password string, secrets bool) models.UserInDB {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.UserInDB{
		User:           models.User{Username: name, HasSecretsAccess: secrets},
		HashedPassword: string(hash),
	}
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	auth, repo := newTestAuth(t)
	repo.EXPECT().Get(gomock.Any(), "alice").Return(hashedUser(t, "alice", "pw", true), nil)

	user, err := auth.Authenticate(context.Background(), "alice", "pw")

	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "alice", HasSecretsAccess: true}, user)
}

func TestAuthenticate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		setup    func(t *testing.T, repo *mock.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "empty credentials",
			username: "",
			password: "pw",
			setup:    func(t *testing.T, repo *mock.MockUserRepository) {},
			wantErr:  ErrInvalidDataProvided,
		},
		{
			name:     "unknown user",
			username: "mallory",
			password: "pw",
			setup: func(t *testing.T, repo *mock.MockUserRepository) {
				repo.EXPECT().Get(gomock.Any(), "mallory").Return(models.UserInDB{}, store.ErrUserNotFound)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "nope",
			setup: func(t *testing.T, repo *mock.MockUserRepository) {
				repo.EXPECT().Get(gomock.Any(), "alice").Return(hashedUser(t, "alice", "pw", false), nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name:     "corrupted user db",
			username: "alice",
			password: "pw",
			setup: func(t *testing.T, repo *mock.MockUserRepository) {
				repo.EXPECT().Get(gomock.Any(), "alice").Return(models.UserInDB{}, store.ErrUserDBCorrupted)
			},
			wantErr: store.ErrUserDBCorrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, repo := newTestAuth(t)
			tt.setup(t, repo)

			_, err := auth.Authenticate(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestCreateAndParseToken(t *testing.T) {
	auth, repo := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.CreateToken(ctx, models.User{Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	repo.EXPECT().Get(gomock.Any(), "alice").Return(hashedUser(t, "alice", "pw", true), nil)

	user, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.HasSecretsAccess)
}

func TestCreateToken_MissingSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := NewAuthService(mock.NewMockUserRepository(ctrl), config.App{TokenIssuer: "x", TokenDuration: time.Hour}, logger.Nop())

	_, err := auth.CreateToken(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken_Rejects(t *testing.T) {
	foreign, err := utils.GenerateJWTToken("someone-else", "alice", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "alice", time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"wrong issuer", foreign.SignedString},
		{"wrong key", otherKey.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, _ := newTestAuth(t)

			_, err := auth.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestParseToken_DeletedUser(t *testing.T) {
	auth, repo := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.CreateToken(ctx, models.User{Username: "ghost"})
	require.NoError(t, err)

	repo.EXPECT().Get(gomock.Any(), "ghost").Return(models.UserInDB{}, store.ErrUserNotFound)

	_, err = auth.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// HashPassword
// ─────────────────────────────────────────────

func TestHashPassword(t *testing.T) {
	auth, _ := newTestAuth(t)

	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))

	_, err = auth.HashPassword("")
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}
