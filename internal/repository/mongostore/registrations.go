package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/internal/repository"
)

var registrationFilterFields = []string{"campName", "campFees", "paymentStatus"}

// RegistrationStore keeps registrations in the "join" collection.
type RegistrationStore struct {
	coll *mongo.Collection
}

func NewRegistrationStore(db *mongo.Database) *RegistrationStore {
	return &RegistrationStore{coll: db.Collection(joinCollection)}
}

func (s *RegistrationStore) Create(ctx context.Context, reg *model.Registration) (model.InsertResult, error) {
	reg.PaymentStatus = model.PaymentUnpaid
	reg.ConfirmationStatus = model.ConfirmationPending
	reg.CreatedAt = time.Now().UTC()

	doc := joinDoc{
		CampID:             reg.CampID,
		CampName:           reg.CampName,
		CampFees:           reg.CampFees.String(),
		Location:           reg.Location,
		ProfessionalName:   reg.ProfessionalName,
		ParticipantName:    reg.ParticipantName,
		ParticipantEmail:   reg.ParticipantEmail,
		Age:                reg.Age,
		Phone:              reg.Phone,
		Gender:             reg.Gender,
		EmergencyContact:   reg.EmergencyContact,
		PaymentStatus:      string(reg.PaymentStatus),
		ConfirmationStatus: string(reg.ConfirmationStatus),
		CreatedAt:          reg.CreatedAt,
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert registration: %w", err)
	}
	reg.ID = insertedHex(res.InsertedID)
	return model.InsertResult{Acknowledged: true, InsertedID: reg.ID}, nil
}

func (s *RegistrationStore) FindByEmail(ctx context.Context, email, filter string) ([]model.Registration, error) {
	q := bson.D{{Key: "participantEmail", Value: email}}
	q = append(q, containsAny(filter, registrationFilterFields...)...)
	return s.find(ctx, q)
}

func (s *RegistrationStore) FindAll(ctx context.Context, filter string) ([]model.Registration, error) {
	return s.find(ctx, containsAny(filter, registrationFilterFields...))
}

func (s *RegistrationStore) SetConfirmed(ctx context.Context, id string) (model.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.UpdateResult{}, repository.ErrNotFound
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "confirmationStatus", Value: string(model.ConfirmationConfirmed)}}}},
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("confirm registration: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.UpdateResult{}, repository.ErrNotFound
	}
	return updateResult(res), nil
}

// SetPaid reads the registration with FindOne and marks it paid with a
// separate UpdateOne; the pair is not atomic.
func (s *RegistrationStore) SetPaid(ctx context.Context, id string) (model.PaymentSnapshot, model.UpdateResult, error) {
	var snap model.PaymentSnapshot
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return snap, model.UpdateResult{}, repository.ErrNotFound
	}
	filter := bson.D{{Key: "_id", Value: oid}}

	var doc joinDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return snap, model.UpdateResult{}, repository.ErrNotFound
		}
		return snap, model.UpdateResult{}, fmt.Errorf("read registration: %w", err)
	}
	snap = model.PaymentSnapshot{
		CampName:           doc.CampName,
		CampFees:           model.Fee(doc.CampFees),
		PaymentStatus:      model.PaymentStatus(doc.PaymentStatus),
		ConfirmationStatus: model.ConfirmationStatus(doc.ConfirmationStatus),
	}

	res, err := s.coll.UpdateOne(ctx, filter,
		bson.D{{Key: "$set", Value: bson.D{{Key: "paymentStatus", Value: string(model.PaymentPaid)}}}},
	)
	if err != nil {
		return snap, model.UpdateResult{}, fmt.Errorf("mark registration paid: %w", err)
	}
	if res.MatchedCount == 0 {
		return snap, updateResult(res), repository.ErrNotFound
	}
	return snap, updateResult(res), nil
}

func (s *RegistrationStore) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.DeleteResult{Acknowledged: true}, nil
	}
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete registration: %w", err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *RegistrationStore) find(ctx context.Context, filter bson.D) ([]model.Registration, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	var docs []joinDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode registrations: %w", err)
	}
	regs := make([]model.Registration, 0, len(docs))
	for _, d := range docs {
		regs = append(regs, d.model())
	}
	return regs, nil
}
