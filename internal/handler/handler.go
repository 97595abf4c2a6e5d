// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/auth"
	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/internal/payment"
	"github.com/Shivanand-hulikatti/medcamp/internal/repository"
	"github.com/Shivanand-hulikatti/medcamp/internal/service"
)

// IntentCreator turns a camp fee into a gateway client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, fee *model.Fee) (string, error)
}

// Handler holds all HTTP handlers for the medical camp API.
type Handler struct {
	registrations *service.RegistrationService
	camps         *service.CampService
	users         *service.UserService
	feedback      *service.FeedbackService
	intents       IntentCreator
	tokens        *auth.Issuer
	log           *zerolog.Logger
}

// Deps groups the collaborators of a Handler.
type Deps struct {
	Registrations *service.RegistrationService
	Camps         *service.CampService
	Users         *service.UserService
	Feedback      *service.FeedbackService
	Intents       IntentCreator
	Tokens        *auth.Issuer
	Log           *zerolog.Logger
}

// New constructs a Handler.
func New(d Deps) *Handler {
	return &Handler{
		registrations: d.Registrations,
		camps:         d.Camps,
		users:         d.Users,
		feedback:      d.Feedback,
		intents:       d.Intents,
		tokens:        d.Tokens,
		log:           d.Log,
	}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// decodeJSON tolerates unknown fields: clients post whole camp documents to
// /joins and only the known ones are kept.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	return json.NewDecoder(r.Body).Decode(dst)
}

// fail maps a service error onto a status code. Anything unclassified is
// logged and reported as msg with a 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, repository.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, auth.ErrUnauthorized.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrAlreadyPaid):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, payment.ErrUpstream):
		writeError(w, http.StatusBadGateway, "payment gateway unavailable")
	default:
		h.log.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

// unauthorized is the rejection written by the bearer-token middleware.
func unauthorized(w http.ResponseWriter, _ *http.Request, _ error) {
	writeJSON(w, http.StatusUnauthorized, model.MessageResponse{Message: auth.ErrUnauthorized.Error()})
}

// ─── Health check ─────────────────────────────────────────────────────────────

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("medical camp server is running"))
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
