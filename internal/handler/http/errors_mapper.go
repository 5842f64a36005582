package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/data-catalog/internal/app"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/service"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnknownType:             http.StatusNotFound,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrNotFound:          http.StatusNotFound,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrUserAlreadyExists: http.StatusConflict,

	store.ErrSerialization:    http.StatusInternalServerError,
	store.ErrDecryption:       http.StatusInternalServerError,
	store.ErrIDSpaceExhausted: http.StatusInternalServerError,
	store.ErrConfiguration:    http.StatusInternalServerError,
	store.ErrUserDBCorrupted:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server errors
// get a generic message; details stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	msg := err.Error()
	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg("request failed")
		msg = http.StatusText(status)
	case status == http.StatusNotFound:
		log.Debug().Err(err).Msg("object not found")
		msg = app.MsgObjectDoesNotExist
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteMessage(w, msg, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
