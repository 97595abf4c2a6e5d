package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

const registrationColumns = `id, camp_id, camp_name, camp_fees, location, professional_name,
	participant_name, participant_email, age, phone, gender, emergency_contact,
	payment_status, confirmation_status, created_at`

// RegistrationRepository handles persistence for registrations.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create stores reg as unpaid and pending under a new UUID. The camp id is
// stored as given; the camp is not looked up.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) (model.InsertResult, error) {
	reg.ID = uuid.New().String()
	reg.PaymentStatus = model.PaymentUnpaid
	reg.ConfirmationStatus = model.ConfirmationPending
	reg.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (`+registrationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		reg.ID, reg.CampID, reg.CampName, reg.CampFees, reg.Location, reg.ProfessionalName,
		reg.ParticipantName, reg.ParticipantEmail, reg.Age, reg.Phone, reg.Gender, reg.EmergencyContact,
		reg.PaymentStatus, reg.ConfirmationStatus, reg.CreatedAt,
	)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert registration: %w", err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: reg.ID}, nil
}

// FindByEmail returns the participant's registrations whose camp name, fee
// or payment status contains filter.
func (r *RegistrationRepository) FindByEmail(ctx context.Context, email, filter string) ([]model.Registration, error) {
	return r.list(ctx,
		`SELECT `+registrationColumns+` FROM registrations
		 WHERE participant_email = $1
		   AND (camp_name ILIKE $2 OR camp_fees ILIKE $2 OR payment_status ILIKE $2)`,
		email, containsPattern(filter),
	)
}

// FindAll returns every registration whose camp name, fee or payment status
// contains filter.
func (r *RegistrationRepository) FindAll(ctx context.Context, filter string) ([]model.Registration, error) {
	return r.list(ctx,
		`SELECT `+registrationColumns+` FROM registrations
		 WHERE camp_name ILIKE $1 OR camp_fees ILIKE $1 OR payment_status ILIKE $1`,
		containsPattern(filter),
	)
}

// SetConfirmed confirms the registration. A registration that is already
// confirmed is matched but not modified.
func (r *RegistrationRepository) SetConfirmed(ctx context.Context, id string) (model.UpdateResult, error) {
	var matched, modified int64
	err := r.db.QueryRow(ctx,
		`WITH target AS (
		     SELECT id, confirmation_status FROM registrations WHERE id = $1
		 ), updated AS (
		     UPDATE registrations r SET confirmation_status = $2
		     FROM target t
		     WHERE r.id = t.id AND t.confirmation_status <> $2
		     RETURNING r.id
		 )
		 SELECT (SELECT count(*) FROM target), (SELECT count(*) FROM updated)`,
		id, model.ConfirmationConfirmed,
	).Scan(&matched, &modified)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("confirm registration: %w", err)
	}
	if matched == 0 {
		return model.UpdateResult{}, ErrNotFound
	}
	return model.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}

// SetPaid reads the registration, then marks it paid in a second statement.
// The two statements are not in a transaction: a concurrent writer can change
// the row between them, and two concurrent callers can both read it unpaid.
func (r *RegistrationRepository) SetPaid(ctx context.Context, id string) (model.PaymentSnapshot, model.UpdateResult, error) {
	var snap model.PaymentSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT camp_name, camp_fees, payment_status, confirmation_status
		 FROM registrations WHERE id = $1`,
		id,
	).Scan(&snap.CampName, &snap.CampFees, &snap.PaymentStatus, &snap.ConfirmationStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return snap, model.UpdateResult{}, ErrNotFound
		}
		return snap, model.UpdateResult{}, fmt.Errorf("read registration: %w", err)
	}

	updated, err := r.markPaid(ctx, id)
	return snap, updated, err
}

// markPaid sets the payment status in one statement and reports how many rows
// it matched, so a registration deleted after the read is not counted.
func (r *RegistrationRepository) markPaid(ctx context.Context, id string) (model.UpdateResult, error) {
	var matched, modified int64
	err := r.db.QueryRow(ctx,
		`WITH target AS (
		     SELECT id FROM registrations WHERE id = $1
		 ), updated AS (
		     UPDATE registrations r SET payment_status = $2
		     FROM target t
		     WHERE r.id = t.id AND r.payment_status <> $2
		     RETURNING r.id
		 )
		 SELECT (SELECT count(*) FROM target), (SELECT count(*) FROM updated)`,
		id, model.PaymentPaid,
	).Scan(&matched, &modified)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("mark registration paid: %w", err)
	}
	if matched == 0 {
		return model.UpdateResult{Acknowledged: true}, ErrNotFound
	}
	return model.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}

// Delete removes the registration. A missing id deletes nothing and is not
// an error.
func (r *RegistrationRepository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete registration: %w", err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

func (r *RegistrationRepository) list(ctx context.Context, query string, args ...any) ([]model.Registration, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(
			&reg.ID, &reg.CampID, &reg.CampName, &reg.CampFees, &reg.Location, &reg.ProfessionalName,
			&reg.ParticipantName, &reg.ParticipantEmail, &reg.Age, &reg.Phone, &reg.Gender, &reg.EmergencyContact,
			&reg.PaymentStatus, &reg.ConfirmationStatus, &reg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
