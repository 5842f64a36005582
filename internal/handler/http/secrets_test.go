package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSecrets_Routes(t *testing.T) {
	base := "/dataset/" + objectID

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(e *testEnv)
		wantCode int
		wantBody string
	}{
		{
			name:   "list keys",
			method: http.MethodGet,
			path:   base + "/secrets",
			setup: func(e *testEnv) {
				e.catalog.EXPECT().ListSecrets(gomock.Any(), datasetRef, "keeper").Return([]string{"login", "password"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `["login","password"]`,
		},
		{
			name:   "values",
			method: http.MethodGet,
			path:   base + "/secrets_values",
			setup: func(e *testEnv) {
				e.catalog.EXPECT().GetSecrets(gomock.Any(), datasetRef, "keeper").Return(map[string]string{"login": "svc"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"login":"svc"}`,
		},
		{
			name:   "put",
			method: http.MethodPost,
			path:   base + "/secrets",
			body:   `{"key":"password","secret":"hunter2"}`,
			setup: func(e *testEnv) {
				e.catalog.EXPECT().PutSecret(gomock.Any(), datasetRef, models.Secret{Key: "password", Secret: "hunter2"}, "keeper").Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `null`,
		},
		{
			name:     "put invalid body",
			method:   http.MethodPost,
			path:     base + "/secrets",
			body:     `["password"]`,
			setup:    func(*testEnv) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "get one",
			method: http.MethodGet,
			path:   base + "/secrets/password",
			setup: func(e *testEnv) {
				e.catalog.EXPECT().GetSecret(gomock.Any(), datasetRef, "password", "keeper").Return("hunter2", nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"hunter2"`,
		},
		{
			name:   "get missing key",
			method: http.MethodGet,
			path:   base + "/secrets/nope",
			setup: func(e *testEnv) {
				e.catalog.EXPECT().GetSecret(gomock.Any(), datasetRef, "nope", "keeper").
					Return("", fmt.Errorf("%w: secret nope", store.ErrNotFound))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Object does not exist"}`,
		},
		{
			name:   "delete returns removed value",
			method: http.MethodDelete,
			path:   base + "/secrets/password",
			setup: func(e *testEnv) {
				e.catalog.EXPECT().DeleteSecret(gomock.Any(), datasetRef, "password", "keeper").Return("hunter2", nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"hunter2"`,
		},
		{
			name:     "unknown type",
			method:   http.MethodGet,
			path:     "/buckets/" + objectID + "/secrets",
			setup:    func(*testEnv) {},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.as(keeper)
			tt.setup(env)

			rec := env.do(tt.method, tt.path, tt.body, true)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
