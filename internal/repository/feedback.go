package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// FeedbackRepository handles persistence for camp feedback.
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository constructs a FeedbackRepository.
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *model.Feedback) (model.InsertResult, error) {
	f.ID = uuid.New().String()
	f.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO feedback (id, camp_name, participant_name, participant_email, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.CampName, f.ParticipantName, f.ParticipantEmail, f.Rating, f.Comment, f.CreatedAt,
	)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert feedback: %w", err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: f.ID}, nil
}

// List returns all feedback, newest first.
func (r *FeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, camp_name, participant_name, participant_email, rating, comment, created_at
		 FROM feedback
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var out []model.Feedback
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.CampName, &f.ParticipantName, &f.ParticipantEmail,
			&f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
