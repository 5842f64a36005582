package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/utils"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPCatalogClient constructs an HTTP/REST implementation of
// [CatalogClient]. address may omit the scheme, in which case http:// is
// assumed.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPCatalogClient(address string, timeout time.Duration, logger *logger.Logger) (CatalogClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog address: %w", err)
	}

	return &httpCatalogClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogClient) Token() string {
	return h.token
}

// Login posts the OAuth2 password form to POST /token.
func (h *httpCatalogClient) Login(ctx context.Context, username, password string) error {
	var token models.AccessToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"username": username, "password": password}).
		SetResult(&token).
		Post("/token")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if token.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrUnexpectedResponse)
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("user", username).Msg("logged in to catalog")
	return nil
}

func (h *httpCatalogClient) List(ctx context.Context, dataType models.LocationDataType, filter models.Filter) ([]models.ListEntry, error) {
	var entries []models.ListEntry

	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.URL != "" {
		query.Set("url", filter.URL)
	}
	for _, k := range filter.HasKeys {
		query.Add("has_key", k)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetPathParam("type", dataType.String()).
		SetResult(&entries).
		Get("/{type}")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpCatalogClient) Get(ctx context.Context, dataType models.LocationDataType, id string) (models.LocationData, error) {
	var data models.LocationData

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"type": dataType.String(), "id": id}).
		SetResult(&data).
		Get("/{type}/{id}")
	if err != nil {
		return models.LocationData{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LocationData{}, err
	}

	return data, nil
}

func (h *httpCatalogClient) Add(ctx context.Context, dataType models.LocationDataType, data models.LocationData) (string, error) {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("type", dataType.String()).
		SetBody(data).
		Post("/{type}")
	if err != nil {
		return "", fmt.Errorf("add request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return idFromPair(resp.Body())
}

func (h *httpCatalogClient) Update(ctx context.Context, dataType models.LocationDataType, id string, data models.LocationData) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"type": dataType.String(), "id": id}).
		SetBody(data).
		Put("/{type}/{id}")
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCatalogClient) Delete(ctx context.Context, dataType models.LocationDataType, id string) error {
	resp, err := h.authorized(ctx).
		SetPathParams(map[string]string{"type": dataType.String(), "id": id}).
		Delete("/{type}/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCatalogClient) PutSecret(ctx context.Context, dataType models.LocationDataType, id string, secret models.Secret) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"type": dataType.String(), "id": id}).
		SetBody(secret).
		Post("/{type}/{id}/secrets")
	if err != nil {
		return fmt.Errorf("put secret request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCatalogClient) GetSecret(ctx context.Context, dataType models.LocationDataType, id, key string) (string, error) {
	var value string

	resp, err := h.authorized(ctx).
		SetPathParams(map[string]string{"type": dataType.String(), "id": id, "key": key}).
		SetResult(&value).
		Get("/{type}/{id}/secrets/{key}")
	if err != nil {
		return "", fmt.Errorf("get secret request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return value, nil
}

// authorized starts a request carrying the stored bearer token. Without a
// token the server answers 401, which maps to [ErrUnauthorized].
func (h *httpCatalogClient) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// idFromPair reads the id from an [id, data] response.
func idFromPair(body []byte) (string, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(body, &pair); err != nil || len(pair) != 2 {
		return "", fmt.Errorf("%w: expected [id, data]", ErrUnexpectedResponse)
	}

	var id string
	if err := json.Unmarshal(pair[0], &id); err != nil {
		return "", fmt.Errorf("%w: id is not a string", ErrUnexpectedResponse)
	}
	return id, nil
}
