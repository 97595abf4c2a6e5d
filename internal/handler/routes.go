package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes builds the API router. Only the camp management routes require a
// bearer token; registration and payment routes are open.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	requireToken := h.tokens.Middleware(unauthorized)

	r.Get("/", Root)
	r.Get("/health", HealthCheck)

	r.Post("/jwt", h.IssueToken)
	r.Post("/users", h.CreateUser)
	r.Get("/participant-profile/{email}", h.Profile)

	// Camps
	r.Get("/camps", h.ListCamps)
	r.Get("/camps-details/{id}", h.GetCamp)
	r.Get("/update-camps/{id}", h.GetCamp)
	r.Get("/high-participant", h.PopularCamps)
	r.Group(func(r chi.Router) {
		r.Use(requireToken)
		r.Get("/manage-camps", h.ManageCamps)
		r.Post("/camps", h.CreateCamp)
		r.Put("/camps-update/{id}", h.UpdateCamp)
		r.Delete("/delete-camp/{id}", h.DeleteCamp)
	})

	// Registrations
	r.Post("/joins", h.Register)
	r.Get("/register/{email}", h.ListForParticipant)
	r.Get("/analytics/{email}", h.Analytics)
	r.Get("/manage-register", h.ListAll)
	r.Patch("/confirmation-status/{id}", h.Confirm)
	r.Delete("/delete-register/{id}", h.Cancel)
	r.Delete("/register/{id}", h.Withdraw)

	// Payments
	r.Post("/create-payment-intent", h.CreatePaymentIntent)
	r.Post("/update-payment-status/{id}", h.Pay)
	r.Get("/payment-history/{email}", h.PaymentHistory)

	// Feedback
	r.Post("/feedbacks", h.SubmitFeedback)
	r.Get("/feedback-rating", h.ListFeedback)

	return r
}
