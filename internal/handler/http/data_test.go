package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/data-catalog/internal/app"
	"github.com/MKhiriev/data-catalog/internal/service"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const objectID = "0b1c8a52-8d43-4a55-9a43-8f0f8b8e2f11"

var datasetRef = models.ObjectRef{Type: models.Dataset, ID: objectID}

// ─────────────────────────────────────────────
// listTypes
// ─────────────────────────────────────────────

func TestListTypes(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.EXPECT().ListTypes(gomock.Any()).Return([]map[string]string{
		{"dataset": "/dataset"},
		{"storage_target": "/storage_target"},
	})

	rec := env.do(http.MethodGet, "/", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"dataset":"/dataset"},{"storage_target":"/storage_target"}]`, rec.Body.String())
}

// TestListTypes_BrowserRedirect verifies that browsers, which list
// text/html before application/json, are sent to the frontend.
func TestListTypes_BrowserRedirect(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/index.html", rec.Header().Get("Location"))
}

func TestPrefersHTML(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"*/*", false},
		{"application/json", false},
		{"text/html", true},
		{"application/json, text/html", false},
		{"text/html, application/json", true},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, prefersHTML(tt.accept))
		})
	}
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestList_PassesFilter(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.EXPECT().
		List(gomock.Any(), "dataset", models.Filter{Name: "sales", URL: "s3://", HasKeys: []string{"a", "b"}}).
		Return([]models.ListEntry{{Name: "sales", ID: objectID}}, nil)

	rec := env.do(http.MethodGet, "/dataset?name=sales&url=s3://&has_key=a&has_key=b", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[["sales","`+objectID+`"]]`, rec.Body.String())
}

func TestList_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.EXPECT().List(gomock.Any(), "dataset", models.Filter{}).Return(nil, nil)

	rec := env.do(http.MethodGet, "/dataset", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestList_UnknownType(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.EXPECT().List(gomock.Any(), "buckets", models.Filter{}).
		Return(nil, fmt.Errorf("%w: buckets", service.ErrUnknownType))

	rec := env.do(http.MethodGet, "/buckets", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgObjectDoesNotExist, decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// get
// ─────────────────────────────────────────────

func TestGet(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.EXPECT().Get(gomock.Any(), datasetRef).
		Return(models.LocationData{Name: "sales", URL: "s3://sales", Metadata: map[string]string{"team": "bi"}}, nil)

	rec := env.do(http.MethodGet, "/dataset/"+objectID, "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.LocationData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "sales", got.Name)
	assert.Equal(t, map[string]string{"team": "bi"}, got.Metadata)
}

// TestGet_NotFoundHidesDetails verifies that a missing object, an invalid
// id and an unknown type all answer with the same message.
func TestGet_NotFoundHidesDetails(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.EXPECT().Get(gomock.Any(), models.ObjectRef{Type: models.Dataset, ID: "..%2f..%2fetc"}).
		Return(models.LocationData{}, fmt.Errorf("%w: invalid id ../../etc", store.ErrNotFound))
	env.catalog.EXPECT().Get(gomock.Any(), datasetRef).
		Return(models.LocationData{}, fmt.Errorf("%w: /data/dataset/%s.json", store.ErrNotFound, objectID))

	for _, target := range []string{"/dataset/..%2f..%2fetc", "/dataset/" + objectID, "/buckets/" + objectID} {
		t.Run(target, func(t *testing.T) {
			rec := env.do(http.MethodGet, target, "", false)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, app.MsgObjectDoesNotExist, decodeMessage(t, rec))
			assert.NotContains(t, rec.Body.String(), objectID)
		})
	}
}

// ─────────────────────────────────────────────
// add / update / delete
// ─────────────────────────────────────────────

func TestAdd_ReturnsIDAndData(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)

	stored := models.LocationData{Name: "sales", Metadata: map[string]string{"team": "bi"}}
	env.catalog.EXPECT().Add(gomock.Any(), "dataset", models.LocationData{Name: "sales", Metadata: map[string]string{"team": "bi"}}, "writer").
		Return(objectID, stored, nil)

	rec := env.do(http.MethodPost, "/dataset", `{"name":"sales","metadata":{"team":"bi"}}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var pair []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	require.Len(t, pair, 2)
	assert.JSONEq(t, `"`+objectID+`"`, string(pair[0]))

	var got models.LocationData
	require.NoError(t, json.Unmarshal(pair[1], &got))
	assert.Equal(t, stored, got)
}

func TestAdd_InvalidBody(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)

	rec := env.do(http.MethodPost, "/dataset", `{"name":`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec), "invalid JSON")
}

func TestAdd_ValidationError(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)
	env.catalog.EXPECT().Add(gomock.Any(), "dataset", gomock.Any(), "writer").
		Return("", models.LocationData{}, fmt.Errorf("%w: name must not be empty", service.ErrInvalidDataProvided))

	rec := env.do(http.MethodPost, "/dataset", `{"url":"s3://x"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec), "name must not be empty")
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)
	env.catalog.EXPECT().Update(gomock.Any(), datasetRef, models.LocationData{Name: "sales v2"}, "writer").
		Return(objectID, models.LocationData{Name: "sales v2"}, nil)

	rec := env.do(http.MethodPut, "/dataset/"+objectID, `{"name":"sales v2"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["`+objectID+`",{"name":"sales v2","url":"","metadata":null}]`, rec.Body.String())
}

func TestUpdate_UnknownTypeSkipsService(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)

	rec := env.do(http.MethodPut, "/buckets/"+objectID, `{"name":"x"}`, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)
	env.catalog.EXPECT().Delete(gomock.Any(), datasetRef, "writer").Return(nil)

	rec := env.do(http.MethodDelete, "/dataset/"+objectID, "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestDelete_StorageFailureIsGeneric(t *testing.T) {
	env := newTestEnv(t)
	env.as(writer)
	env.catalog.EXPECT().Delete(gomock.Any(), datasetRef, "writer").
		Return(fmt.Errorf("%w: remove /srv/data/dataset/x.json: permission denied", store.ErrConfiguration))

	rec := env.do(http.MethodDelete, "/dataset/"+objectID, "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeMessage(t, rec))
}
