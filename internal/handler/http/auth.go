package http

import (
	"net/http"

	"github.com/MKhiriev/data-catalog/internal/app"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/service"
	"github.com/MKhiriev/data-catalog/internal/utils"
	"github.com/MKhiriev/data-catalog/models"
)

const tokenTypeBearer = "bearer"

// login implements the OAuth2 password flow: a form with username and
// password is exchanged for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user", user.Username).Msg("token issued")
	utils.WriteJSON(w, models.AccessToken{AccessToken: token.SignedString, TokenType: tokenTypeBearer}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoUserInContext).Send()
		unauthorized(w, app.MsgNotAuthenticated)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
