package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// FeedbackService records participant feedback.
type FeedbackService struct {
	feedback FeedbackStore
	log      *zerolog.Logger
}

// NewFeedbackService constructs a FeedbackService.
func NewFeedbackService(feedback FeedbackStore, log *zerolog.Logger) *FeedbackService {
	return &FeedbackService{feedback: feedback, log: log}
}

// Submit validates and stores a rating.
func (s *FeedbackService) Submit(ctx context.Context, req model.FeedbackRequest) (model.InsertResult, error) {
	req.ParticipantEmail = normalizeEmail(req.ParticipantEmail)
	req.CampName = strings.TrimSpace(req.CampName)
	if err := validate(ctx, req); err != nil {
		return model.InsertResult{}, err
	}

	f := &model.Feedback{
		CampName:         req.CampName,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		Rating:           req.Rating,
		Comment:          strings.TrimSpace(req.Comment),
	}
	res, err := s.feedback.Create(ctx, f)
	if err != nil {
		return res, fmt.Errorf("create feedback: %w", err)
	}
	s.log.Info().Str("feedback_id", res.InsertedID).Int("rating", f.Rating).Msg("feedback submitted")
	return res, nil
}

// List returns all feedback.
func (s *FeedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	return s.feedback.List(ctx)
}
