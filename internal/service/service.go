// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the storage layer.
//
// The store contracts are declared here, next to their consumer. Both the
// PostgreSQL repositories and the MongoDB stores satisfy them.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/pkg/validator"
)

var (
	// ErrValidation marks a request rejected before it reached storage.
	ErrValidation = errors.New("invalid request")

	// ErrAlreadyPaid is returned when a registration read as paid before the
	// payment step ran.
	ErrAlreadyPaid = errors.New("registration is already paid")
)

// RegistrationStore owns registration records.
type RegistrationStore interface {
	Create(ctx context.Context, reg *model.Registration) (model.InsertResult, error)
	FindByEmail(ctx context.Context, email, filter string) ([]model.Registration, error)
	FindAll(ctx context.Context, filter string) ([]model.Registration, error)
	SetConfirmed(ctx context.Context, id string) (model.UpdateResult, error)
	// SetPaid marks the registration paid and returns the values it held
	// before the write. The read and the write are separate operations; a row
	// gone by the write is reported as not found.
	SetPaid(ctx context.Context, id string) (model.PaymentSnapshot, model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

// CampCounter owns the per-camp participant count.
type CampCounter interface {
	Increment(ctx context.Context, campID string, by int) (model.UpdateResult, error)
}

// PaymentLedger owns payment records.
type PaymentLedger interface {
	Record(ctx context.Context, p *model.Payment) (model.InsertResult, error)
	UpdateByRegistrationID(ctx context.Context, ref model.RegistrationRef, status model.ConfirmationStatus) (model.UpdateResult, error)
	DeleteByRegistrationID(ctx context.Context, ref model.RegistrationRef) (model.DeleteResult, error)
	FindByEmail(ctx context.Context, email, filter string) ([]model.Payment, error)
}

// CampSort selects the ordering of a camp search.
type CampSort string

const (
	SortNone             CampSort = ""
	SortMostRegistered   CampSort = "Most Registered"
	SortCampFees         CampSort = "Camp Fees"
	SortAlphabeticalName CampSort = "Alphabetical Order"
)

// CampStore owns the camp catalog.
type CampStore interface {
	CampCounter
	Create(ctx context.Context, req model.CampRequest) (model.InsertResult, error)
	GetByID(ctx context.Context, id string) (*model.Camp, error)
	Search(ctx context.Context, search string, sort CampSort) ([]model.Camp, error)
	SearchManaged(ctx context.Context, search string) ([]model.Camp, error)
	TopByParticipants(ctx context.Context, limit int) ([]model.Camp, error)
	Upsert(ctx context.Context, id string, req model.CampRequest) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

// UserStore owns user accounts.
type UserStore interface {
	// InsertIfAbsent inserts u unless a user with the same email exists.
	InsertIfAbsent(ctx context.Context, u *model.User) (inserted bool, err error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// FeedbackStore owns camp feedback.
type FeedbackStore interface {
	Create(ctx context.Context, f *model.Feedback) (model.InsertResult, error)
	List(ctx context.Context) ([]model.Feedback, error)
}

// validate runs struct validation and marks failures with ErrValidation.
func validate(ctx context.Context, req any) error {
	if err := validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func requireID(id, what string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s id is required", ErrValidation, what)
	}
	return nil
}
