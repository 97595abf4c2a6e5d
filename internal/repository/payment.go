package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

const paymentColumns = `id, registration_id, camp_name, camp_fees, payment_status,
	confirmation_status, transaction_id, email, created_at`

// PaymentRepository handles persistence for the payment ledger.
//
// registration_id is an indexed plain column, not a foreign key: payments
// are matched to registrations by value only.
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Record appends a payment. Nothing prevents a second payment for the same
// registration.
func (r *PaymentRepository) Record(ctx context.Context, p *model.Payment) (model.InsertResult, error) {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO payments (`+paymentColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.RegistrationID, p.CampName, p.CampFees, p.PaymentStatus,
		p.ConfirmationStatus, p.TransactionID, p.Email, p.CreatedAt,
	)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert payment: %w", err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
}

// UpdateByRegistrationID sets the confirmation status of the oldest payment
// that references ref. No match is a zero-effect result.
func (r *PaymentRepository) UpdateByRegistrationID(ctx context.Context, ref model.RegistrationRef, status model.ConfirmationStatus) (model.UpdateResult, error) {
	var matched, modified int64
	err := r.db.QueryRow(ctx,
		`WITH target AS (
		     SELECT id, confirmation_status FROM payments
		     WHERE registration_id = $1
		     ORDER BY created_at ASC
		     LIMIT 1
		 ), updated AS (
		     UPDATE payments p SET confirmation_status = $2
		     FROM target t
		     WHERE p.id = t.id AND t.confirmation_status <> $2
		     RETURNING p.id
		 )
		 SELECT (SELECT count(*) FROM target), (SELECT count(*) FROM updated)`,
		ref, status,
	).Scan(&matched, &modified)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("update payment confirmation: %w", err)
	}
	return model.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}

// DeleteByRegistrationID removes the oldest payment that references ref. No
// match is a zero-effect result.
func (r *PaymentRepository) DeleteByRegistrationID(ctx context.Context, ref model.RegistrationRef) (model.DeleteResult, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM payments WHERE id = (
		     SELECT id FROM payments WHERE registration_id = $1 ORDER BY created_at ASC LIMIT 1
		 )`,
		ref,
	)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete payment: %w", err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: tag.RowsAffected()}, nil
}

// FindByEmail returns the payments made under email whose camp name, fee or
// payment status contains filter.
func (r *PaymentRepository) FindByEmail(ctx context.Context, email, filter string) ([]model.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
		 WHERE email = $1
		   AND (camp_name ILIKE $2 OR camp_fees ILIKE $2 OR payment_status ILIKE $2)`,
		email, containsPattern(filter),
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(
			&p.ID, &p.RegistrationID, &p.CampName, &p.CampFees, &p.PaymentStatus,
			&p.ConfirmationStatus, &p.TransactionID, &p.Email, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
