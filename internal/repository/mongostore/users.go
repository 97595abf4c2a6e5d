package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/internal/repository"
)

// UserStore keeps users in the "users" collection.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(usersCollection)}
}

// InsertIfAbsent upserts with $setOnInsert, so an existing user is left
// untouched and reported as not inserted.
func (s *UserStore) InsertIfAbsent(ctx context.Context, u *model.User) (bool, error) {
	u.CreatedAt = time.Now().UTC()
	doc := userDoc{
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "email", Value: u.Email}},
		bson.D{{Key: "$setOnInsert", Value: doc}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("insert user: %w", err)
	}
	return res.UpsertedCount == 1, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var doc userDoc
	if err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &model.User{
		Email:     doc.Email,
		Name:      doc.Name,
		PhotoURL:  doc.PhotoURL,
		Role:      model.Role(doc.Role),
		Phone:     doc.Phone,
		Address:   doc.Address,
		CreatedAt: doc.CreatedAt,
	}, nil
}
