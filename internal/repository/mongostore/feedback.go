package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// FeedbackStore keeps feedback in the "feedback" collection.
type FeedbackStore struct {
	coll *mongo.Collection
}

func NewFeedbackStore(db *mongo.Database) *FeedbackStore {
	return &FeedbackStore{coll: db.Collection(feedbackCollection)}
}

func (s *FeedbackStore) Create(ctx context.Context, f *model.Feedback) (model.InsertResult, error) {
	f.CreatedAt = time.Now().UTC()
	res, err := s.coll.InsertOne(ctx, feedbackDoc{
		CampName:         f.CampName,
		ParticipantName:  f.ParticipantName,
		ParticipantEmail: f.ParticipantEmail,
		Rating:           f.Rating,
		Comment:          f.Comment,
		CreatedAt:        f.CreatedAt,
	})
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert feedback: %w", err)
	}
	f.ID = insertedHex(res.InsertedID)
	return model.InsertResult{Acknowledged: true, InsertedID: f.ID}, nil
}

func (s *FeedbackStore) List(ctx context.Context) ([]model.Feedback, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	var docs []feedbackDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	out := make([]model.Feedback, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.Feedback{
			ID:               d.ID.Hex(),
			CampName:         d.CampName,
			ParticipantName:  d.ParticipantName,
			ParticipantEmail: d.ParticipantEmail,
			Rating:           d.Rating,
			Comment:          d.Comment,
			CreatedAt:        d.CreatedAt,
		})
	}
	return out, nil
}
