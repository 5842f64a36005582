package http

import (
	"net/http"

	"github.com/MKhiriev/data-catalog/internal/utils"
	"github.com/MKhiriev/data-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	keys, err := h.services.CatalogService.ListSecrets(r.Context(), ref, currentUsername(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

func (h *Handler) getSecretValues(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	secrets, err := h.services.CatalogService.GetSecrets(r.Context(), ref, currentUsername(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, secrets, http.StatusOK)
}

func (h *Handler) putSecret(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var secret models.Secret
	if err := decodeJSON(r, &secret); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.CatalogService.PutSecret(r.Context(), ref, secret, currentUsername(r)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nil, http.StatusOK)
}

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	value, err := h.services.CatalogService.GetSecret(r.Context(), ref, chi.URLParam(r, "key"), currentUsername(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, value, http.StatusOK)
}

// deleteSecret responds with the removed value.
func (h *Handler) deleteSecret(w http.ResponseWriter, r *http.Request) {
	ref, err := objectRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	value, err := h.services.CatalogService.DeleteSecret(r.Context(), ref, chi.URLParam(r, "key"), currentUsername(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, value, http.StatusOK)
}
