package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/internal/payment"
	"github.com/Shivanand-hulikatti/medcamp/pkg/validator"
)

// FeesRequiredMessage is the 400 body for a payment intent without a usable
// fee.
const FeesRequiredMessage = "Fees is required!"

// Register handles POST /joins
// Records the participant and counts them on the camp.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.registrations.Register(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "failed to register")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// ListForParticipant handles GET /register/{email}?search=
func (h *Handler) ListForParticipant(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.ListForParticipant(r.Context(), chi.URLParam(r, "email"), r.URL.Query().Get("search"))
	if err != nil {
		h.fail(w, r, err, "failed to list registrations")
		return
	}
	writeRegistrations(w, regs)
}

// Analytics handles GET /analytics/{email}
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.Analytics(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.fail(w, r, err, "failed to load analytics")
		return
	}
	writeRegistrations(w, regs)
}

// ListAll handles GET /manage-register?search=
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrations.ListAll(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.fail(w, r, err, "failed to list registrations")
		return
	}
	writeRegistrations(w, regs)
}

// Confirm handles PATCH /confirmation-status/{id}
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	res, err := h.registrations.Confirm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "failed to confirm registration")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Cancel handles DELETE /delete-register/{id}
// The organizer rejection removes the registration and its payment.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	res, err := h.registrations.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "failed to cancel registration")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Withdraw handles DELETE /register/{id}
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	res, err := h.registrations.Withdraw(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "failed to withdraw registration")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// CreatePaymentIntent handles POST /create-payment-intent
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentIntentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, FeesRequiredMessage)
		return
	}
	if err := validator.Validate(r.Context(), req); err != nil {
		writeError(w, http.StatusBadRequest, FeesRequiredMessage)
		return
	}

	secret, err := h.intents.CreateIntent(r.Context(), req.Fees)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			writeError(w, http.StatusBadRequest, FeesRequiredMessage)
			return
		}
		h.fail(w, r, err, "failed to create payment intent")
		return
	}

	writeJSON(w, http.StatusOK, model.PaymentIntentResponse{ClientSecret: secret})
}

// Pay handles POST /update-payment-status/{id}
// Marks the registration paid and appends the payment to the ledger.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	var req model.PayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.registrations.Pay(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, r, err, "failed to record payment")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// PaymentHistory handles GET /payment-history/{email}?search=
func (h *Handler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	payments, err := h.registrations.PaymentHistory(r.Context(), chi.URLParam(r, "email"), r.URL.Query().Get("search"))
	if err != nil {
		h.fail(w, r, err, "failed to list payments")
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func writeRegistrations(w http.ResponseWriter, regs []model.Registration) {
	// Return an empty array rather than null for better client compatibility.
	if regs == nil {
		regs = []model.Registration{}
	}
	writeJSON(w, http.StatusOK, regs)
}
