// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/service"
	"github.com/MKhiriev/data-catalog/internal/utils"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/go-chi/chi/v5"
)

const (
	mimeJSON = "application/json"
	mimeHTML = "text/html"

	indexPage = "/index.html"
)

// listTypes answers with the partition list, or redirects browsers to the
// frontend when text/html appears before application/json in Accept.
func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	if prefersHTML(r.Header.Get("Accept")) {
		logger.FromRequest(r).Debug().Msg("browser redirected to index page")
		http.Redirect(w, r, indexPage, http.StatusTemporaryRedirect)
		return
	}

	utils.WriteJSON(w, h.services.CatalogService.ListTypes(r.Context()), http.StatusOK)
}

func prefersHTML(accept string) bool {
	jsonPos := strings.Index(accept, mimeJSON)
	if jsonPos == -1 {
		jsonPos = len(accept)
	}
	htmlPos := strings.Index(accept, mimeHTML)
	if htmlPos == -1 {
		htmlPos = len(accept)
	}
	return htmlPos < jsonPos
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.Filter{
		Name:    query.Get("name"),
		URL:     query.Get("url"),
		HasKeys: query["has_key"],
	}

	entries, err := h.services.CatalogService.List(r.Context(), chi.URLParam(r, "type"), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.ListEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.services.CatalogService.Get(r.Context(), ref)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, data, http.StatusOK)
}

// add responds with the two-element array [id, data].
func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var data models.LocationData
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	id, stored, err := h.services.CatalogService.Add(r.Context(), chi.URLParam(r, "type"), data, currentUsername(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, []any{id, stored}, http.StatusOK)
}

// update responds with the two-element array [id, data].
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var data models.LocationData
	if err := decodeJSON(r, &data); err != nil {
		writeError(w, r, err)
		return
	}

	id, stored, err := h.services.CatalogService.Update(r.Context(), ref, data, currentUsername(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, []any{id, stored}, http.StatusOK)
}

func (h *Handler) deleteObject(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.CatalogService.Delete(r.Context(), ref, currentUsername(r)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nil, http.StatusOK)
}

// objectRef reads the {type} and {id} URL parameters. Only the type is
// checked here; ids are checked by the catalog service.
func objectRef(r *http.Request) (models.ObjectRef, error) {
	rawType := chi.URLParam(r, "type")
	t, err := models.ParseLocationDataType(rawType)
	if err != nil {
		return models.ObjectRef{}, fmt.Errorf("%w: %s", service.ErrUnknownType, rawType)
	}
	return models.ObjectRef{Type: t, ID: chi.URLParam(r, "id")}, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// currentUsername returns the authenticated username, or "" on routes
// without the auth middleware.
func currentUsername(r *http.Request) string {
	user, _ := utils.GetUserFromContext(r.Context())
	return user.Username
}
