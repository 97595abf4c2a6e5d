package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/internal/repository"
	"github.com/Shivanand-hulikatti/medcamp/internal/service"
)

var campSort = map[service.CampSort]bson.D{
	service.SortMostRegistered:   {{Key: "participantCount", Value: -1}},
	service.SortCampFees:         {{Key: "fees", Value: 1}},
	service.SortAlphabeticalName: {{Key: "campName", Value: 1}},
}

// CampStore keeps camps in the "camps" collection.
type CampStore struct {
	coll *mongo.Collection
}

func NewCampStore(db *mongo.Database) *CampStore {
	return &CampStore{coll: db.Collection(campsCollection)}
}

func (s *CampStore) Create(ctx context.Context, req model.CampRequest) (model.InsertResult, error) {
	doc := campDoc{
		CampName:         req.CampName,
		DateTime:         req.DateTime,
		Location:         req.Location,
		Fees:             req.Fees,
		Description:      req.Description,
		Image:            req.Image,
		ProfessionalName: req.ProfessionalName,
		ParticipantCount: req.ParticipantCount,
		CreatedAt:        time.Now().UTC(),
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert camp: %w", err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: insertedHex(res.InsertedID)}, nil
}

func (s *CampStore) GetByID(ctx context.Context, id string) (*model.Camp, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var doc campDoc
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get camp: %w", err)
	}
	c := doc.model()
	return &c, nil
}

func (s *CampStore) Search(ctx context.Context, search string, sort service.CampSort) ([]model.Camp, error) {
	opts := options.Find()
	if order, ok := campSort[sort]; ok {
		opts.SetSort(order)
	}
	return s.find(ctx, containsAny(search, "campName", "location", "dateTime"), opts)
}

func (s *CampStore) SearchManaged(ctx context.Context, search string) ([]model.Camp, error) {
	return s.find(ctx, containsAny(search, "campName", "dateTime", "professionalName"), options.Find())
}

func (s *CampStore) TopByParticipants(ctx context.Context, limit int) ([]model.Camp, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "participantCount", Value: -1}}).
		SetLimit(int64(limit))
	return s.find(ctx, bson.D{}, opts)
}

// Upsert replaces the editable fields of the camp, inserting it when the id
// is unknown. A malformed id is rejected with ErrInvalidID.
func (s *CampStore) Upsert(ctx context.Context, id string, req model.CampRequest) (model.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("%w: %s", repository.ErrInvalidID, id)
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "campName", Value: req.CampName},
			{Key: "dateTime", Value: req.DateTime},
			{Key: "description", Value: req.Description},
			{Key: "fees", Value: req.Fees},
			{Key: "image", Value: req.Image},
			{Key: "location", Value: req.Location},
			{Key: "participantCount", Value: req.ParticipantCount},
			{Key: "professionalName", Value: req.ProfessionalName},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: time.Now().UTC()}}},
	}
	res, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update, options.Update().SetUpsert(true))
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("upsert camp: %w", err)
	}
	return updateResult(res), nil
}

func (s *CampStore) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.DeleteResult{Acknowledged: true}, nil
	}
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete camp: %w", err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// Increment applies $inc to participantCount. Unknown or malformed ids match
// nothing and are not errors.
func (s *CampStore) Increment(ctx context.Context, campID string, by int) (model.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(campID)
	if err != nil {
		return model.UpdateResult{Acknowledged: true}, nil
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "participantCount", Value: by}}}},
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("increment participantCount: %w", err)
	}
	return updateResult(res), nil
}

func (s *CampStore) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]model.Camp, error) {
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list camps: %w", err)
	}
	var docs []campDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode camps: %w", err)
	}
	camps := make([]model.Camp, 0, len(docs))
	for _, d := range docs {
		camps = append(camps, d.model())
	}
	return camps, nil
}

func updateResult(res *mongo.UpdateResult) model.UpdateResult {
	out := model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = insertedHex(res.UpsertedID)
	}
	return out
}
