package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// IssueToken handles POST /jwt
// Signs a bearer token for the posted email.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req model.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.tokens.Issue(email)
	if err != nil {
		h.fail(w, r, err, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

// CreateUser handles POST /users
// An existing email is reported in the body, not as an error.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.users.CreateUser(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "failed to create user")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Profile handles GET /participant-profile/{email}
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Profile(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.fail(w, r, err, "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// SubmitFeedback handles POST /feedbacks
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req model.FeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.feedback.Submit(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "failed to submit feedback")
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// ListFeedback handles GET /feedback-rating
func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedback.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "failed to list feedback")
		return
	}
	if items == nil {
		items = []model.Feedback{}
	}
	writeJSON(w, http.StatusOK, items)
}
