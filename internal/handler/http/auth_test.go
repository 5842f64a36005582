package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/service"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postForm(env *testEnv, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_IssuesBearerToken(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().Authenticate(gomock.Any(), "writer", "pw").Return(writer, nil)
	env.auth.EXPECT().CreateToken(gomock.Any(), writer).Return(models.Token{SignedString: "signed"}, nil)

	rec := postForm(env, url.Values{"username": {"writer"}, "password": {"pw"}})

	require.Equal(t, http.StatusOK, rec.Code)
	var token models.AccessToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.Equal(t, models.AccessToken{AccessToken: "signed", TokenType: "bearer"}, token)
}

func TestLogin_WrongCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().Authenticate(gomock.Any(), "writer", "bad").Return(models.User{}, service.ErrWrongCredentials)

	rec := postForm(env, url.Values{"username": {"writer"}, "password": {"bad"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestLogin_TokenCreationFails(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().Authenticate(gomock.Any(), "writer", "pw").Return(writer, nil)
	env.auth.EXPECT().CreateToken(gomock.Any(), writer).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := postForm(env, url.Values{"username": {"writer"}, "password": {"pw"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_ReturnsPublicUser(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)

	rec := env.do(http.MethodGet, "/me", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"writer","email":"writer@example.com","has_secrets_access":false}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hashed_password")
}

func TestMe_WithoutUserInContext(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	rec := httptest.NewRecorder()
	h.me(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
