package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// PaymentStore keeps the payment ledger in the "payment" collection.
type PaymentStore struct {
	coll *mongo.Collection
}

func NewPaymentStore(db *mongo.Database) *PaymentStore {
	return &PaymentStore{coll: db.Collection(paymentCollection)}
}

func (s *PaymentStore) Record(ctx context.Context, p *model.Payment) (model.InsertResult, error) {
	p.CreatedAt = time.Now().UTC()
	doc := paymentDoc{
		RegistrationID:     string(p.RegistrationID),
		CampName:           p.CampName,
		CampFees:           p.CampFees.String(),
		PaymentStatus:      string(p.PaymentStatus),
		ConfirmationStatus: string(p.ConfirmationStatus),
		TransactionID:      p.TransactionID,
		Email:              p.Email,
		CreatedAt:          p.CreatedAt,
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert payment: %w", err)
	}
	p.ID = insertedHex(res.InsertedID)
	return model.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
}

// UpdateByRegistrationID updates one payment whose "id" field equals ref.
func (s *PaymentStore) UpdateByRegistrationID(ctx context.Context, ref model.RegistrationRef, status model.ConfirmationStatus) (model.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "id", Value: string(ref)}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "confirmationStatus", Value: string(status)}}}},
	)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("update payment confirmation: %w", err)
	}
	return updateResult(res), nil
}

// DeleteByRegistrationID deletes one payment whose "id" field equals ref.
func (s *PaymentStore) DeleteByRegistrationID(ctx context.Context, ref model.RegistrationRef) (model.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: string(ref)}})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete payment: %w", err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (s *PaymentStore) FindByEmail(ctx context.Context, email, filter string) ([]model.Payment, error) {
	q := bson.D{{Key: "email", Value: email}}
	q = append(q, containsAny(filter, "campName", "campFees", "paymentStatus")...)

	cur, err := s.coll.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	var docs []paymentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	payments := make([]model.Payment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, d.model())
	}
	return payments, nil
}
