package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/delivery/http/middleware"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "dancemode-backend"

// serverError logs err with the request line and replies 500 with msg. err is never echoed.
func serverError(logger zerolog.Logger, w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	h.WriteJSONError(w, http.StatusInternalServerError, msg)
}

// requireUser returns the authenticated user id. It writes 401 and reports
// false when the request carries none.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.MsgUnauthorized)
	}
	return id, ok
}
