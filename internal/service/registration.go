package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// RegistrationService sequences the registration store, the camp counter and
// the payment ledger through the registration lifecycle:
//
//	Pending/unpaid -> Pending/paid -> Confirmed/paid
//
// with deletion reachable from every state. Confirming before paying is
// allowed.
//
// Each operation is a sequence of independent writes. Nothing is retried and
// nothing is rolled back, so a failure part-way leaves the earlier writes in
// place:
//
//   - Register: registration persisted but the camp not counted.
//   - Pay: registration marked paid with no payment row.
//   - Confirm: registration confirmed while its payment still says Pending.
//   - Cancel: registration gone while its payment survives.
//
// Two Pay calls racing on the same registration can both read it unpaid and
// both append a payment. Cancellation and withdrawal never decrement the camp
// counter.
type RegistrationService struct {
	registrations RegistrationStore
	camps         CampCounter
	payments      PaymentLedger
	log           *zerolog.Logger
}

// NewRegistrationService constructs a RegistrationService with its
// dependencies.
func NewRegistrationService(
	registrations RegistrationStore,
	camps CampCounter,
	payments PaymentLedger,
	log *zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		camps:         camps,
		payments:      payments,
		log:           log,
	}
}

// Register records a participant joining a camp, then counts them on the
// camp. The camp is not checked for existence; an unknown camp id leaves the
// counter result at zero matched.
func (s *RegistrationService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResult, error) {
	req.CampID = strings.TrimSpace(req.CampID)
	req.ParticipantEmail = normalizeEmail(req.ParticipantEmail)
	if err := validate(ctx, req); err != nil {
		return model.RegisterResult{}, err
	}

	reg := &model.Registration{
		CampID:           req.CampID,
		CampName:         strings.TrimSpace(req.CampName),
		CampFees:         req.CampFees,
		Location:         req.Location,
		ProfessionalName: req.ProfessionalName,
		ParticipantName:  strings.TrimSpace(req.ParticipantName),
		ParticipantEmail: req.ParticipantEmail,
		Age:              req.Age,
		Phone:            req.Phone,
		Gender:           req.Gender,
		EmergencyContact: req.EmergencyContact,
	}

	var res model.RegisterResult
	inserted, err := s.registrations.Create(ctx, reg)
	if err != nil {
		return res, fmt.Errorf("create registration: %w", err)
	}
	res.Registration = inserted

	counted, err := s.camps.Increment(ctx, req.CampID, 1)
	if err != nil {
		s.log.Warn().Err(err).
			Str("registration_id", inserted.InsertedID).
			Str("camp_id", req.CampID).
			Msg("registration persisted without participant count increment")
		return res, fmt.Errorf("increment participant count: %w", err)
	}
	res.Counter = counted
	if counted.MatchedCount == 0 {
		s.log.Warn().
			Str("registration_id", inserted.InsertedID).
			Str("camp_id", req.CampID).
			Msg("registration references unknown camp; nothing counted")
	}

	s.log.Info().
		Str("registration_id", inserted.InsertedID).
		Str("camp_id", req.CampID).
		Str("email", req.ParticipantEmail).
		Msg("registration created")
	return res, nil
}

// Pay marks the registration paid and appends a payment built from the
// registration's pre-update values plus the gateway transaction id.
func (s *RegistrationService) Pay(ctx context.Context, id string, req model.PayRequest) (model.PayResult, error) {
	if err := requireID(id, "registration"); err != nil {
		return model.PayResult{}, err
	}
	req.Email = normalizeEmail(req.Email)
	req.TransactionID = strings.TrimSpace(req.TransactionID)
	if err := validate(ctx, req); err != nil {
		return model.PayResult{}, err
	}

	var res model.PayResult
	snap, updated, err := s.registrations.SetPaid(ctx, id)
	if err != nil {
		return res, fmt.Errorf("mark registration paid: %w", err)
	}
	res.Result = updated
	if snap.PaymentStatus == model.PaymentPaid {
		return res, ErrAlreadyPaid
	}

	p := &model.Payment{
		RegistrationID:     model.RegistrationRef(id),
		CampName:           snap.CampName,
		CampFees:           snap.CampFees,
		PaymentStatus:      model.PaymentPaid,
		ConfirmationStatus: snap.ConfirmationStatus,
		TransactionID:      req.TransactionID,
		Email:              req.Email,
	}
	recorded, err := s.payments.Record(ctx, p)
	if err != nil {
		s.log.Error().Err(err).
			Str("registration_id", id).
			Str("transaction_id", req.TransactionID).
			Msg("registration marked paid but payment was not recorded")
		return res, fmt.Errorf("record payment: %w", err)
	}
	res.PaymentResult = recorded

	s.log.Info().
		Str("registration_id", id).
		Str("payment_id", recorded.InsertedID).
		Str("transaction_id", req.TransactionID).
		Msg("payment recorded")
	return res, nil
}

// Confirm marks the registration confirmed and mirrors the status onto its
// payment, if one exists yet. Confirming twice is harmless.
func (s *RegistrationService) Confirm(ctx context.Context, id string) (model.ConfirmResult, error) {
	if err := requireID(id, "registration"); err != nil {
		return model.ConfirmResult{}, err
	}

	var res model.ConfirmResult
	updated, err := s.registrations.SetConfirmed(ctx, id)
	if err != nil {
		return res, fmt.Errorf("confirm registration: %w", err)
	}
	res.Result = updated

	mirrored, err := s.payments.UpdateByRegistrationID(ctx, model.RegistrationRef(id), model.ConfirmationConfirmed)
	if err != nil {
		s.log.Warn().Err(err).
			Str("registration_id", id).
			Msg("registration confirmed but payment confirmation not updated")
		return res, fmt.Errorf("confirm payment: %w", err)
	}
	res.PaymentConfirmation = mirrored

	s.log.Info().
		Str("registration_id", id).
		Int64("payments_updated", mirrored.ModifiedCount).
		Msg("registration confirmed")
	return res, nil
}

// Cancel is the organizer rejection: it deletes the registration and its
// payment. Both deletes are zero-effect when nothing matches.
func (s *RegistrationService) Cancel(ctx context.Context, id string) (model.CancelResult, error) {
	if err := requireID(id, "registration"); err != nil {
		return model.CancelResult{}, err
	}

	var res model.CancelResult
	deleted, err := s.registrations.Delete(ctx, id)
	if err != nil {
		return res, fmt.Errorf("delete registration: %w", err)
	}
	res.Result = deleted

	payDeleted, err := s.payments.DeleteByRegistrationID(ctx, model.RegistrationRef(id))
	if err != nil {
		s.log.Warn().Err(err).
			Str("registration_id", id).
			Msg("registration deleted but payment was not")
		return res, fmt.Errorf("delete payment: %w", err)
	}
	res.PayDelete = payDeleted

	s.log.Info().
		Str("registration_id", id).
		Int64("registrations_deleted", deleted.DeletedCount).
		Int64("payments_deleted", payDeleted.DeletedCount).
		Msg("registration cancelled")
	return res, nil
}

// Withdraw is the participant variant of Cancel. It deletes only the
// registration; any payment stays in the ledger.
func (s *RegistrationService) Withdraw(ctx context.Context, id string) (model.DeleteResult, error) {
	if err := requireID(id, "registration"); err != nil {
		return model.DeleteResult{}, err
	}
	deleted, err := s.registrations.Delete(ctx, id)
	if err != nil {
		return deleted, fmt.Errorf("delete registration: %w", err)
	}
	s.log.Info().
		Str("registration_id", id).
		Int64("registrations_deleted", deleted.DeletedCount).
		Msg("registration withdrawn")
	return deleted, nil
}

// ListForParticipant returns a participant's registrations, filtered by a
// case-insensitive substring of camp name, fee or payment status.
func (s *RegistrationService) ListForParticipant(ctx context.Context, email, filter string) ([]model.Registration, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	return s.registrations.FindByEmail(ctx, email, strings.TrimSpace(filter))
}

// Analytics returns all of a participant's registrations, unfiltered.
func (s *RegistrationService) Analytics(ctx context.Context, email string) ([]model.Registration, error) {
	return s.ListForParticipant(ctx, email, "")
}

// ListAll returns every registration matching filter, for organizers.
func (s *RegistrationService) ListAll(ctx context.Context, filter string) ([]model.Registration, error) {
	return s.registrations.FindAll(ctx, strings.TrimSpace(filter))
}

// PaymentHistory returns a participant's payments matching filter.
func (s *RegistrationService) PaymentHistory(ctx context.Context, email, filter string) ([]model.Payment, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	return s.payments.FindByEmail(ctx, email, strings.TrimSpace(filter))
}
