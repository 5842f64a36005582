package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/data-catalog/internal/app"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// to a user via [service.AuthService.ParseToken] and stores that user in the
// request context under [utils.UserCtxKey]. Requests without a valid token
// are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			unauthorized(w, ErrInvalidAuthorizationHeader.Error())
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			unauthorized(w, app.MsgCouldNotValidateCredentials)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = log.With().Str("user", user.Username).Logger().WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSecretsAccess must run after auth. Users without secrets access
// get 403 Forbidden.
func (h *Handler) requireSecretsAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Error().Err(ErrNoUserInContext).Send()
			unauthorized(w, app.MsgNotAuthenticated)
			return
		}
		if !user.HasSecretsAccess {
			logger.FromRequest(r).Warn().Str("user", user.Username).Str("path", r.URL.Path).Msg("secrets access denied")
			utils.WriteMessage(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteMessage(w, msg, http.StatusUnauthorized)
}
