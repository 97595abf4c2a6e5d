package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the lookup indexes the stores rely on. The index on
// payment.id is not unique: a registration can end up with several payments.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	specs := []struct {
		coll  string
		model mongo.IndexModel
	}{
		{usersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_unique"),
		}},
		{joinCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "participantEmail", Value: 1}},
			Options: options.Index().SetName("join_participant_email"),
		}},
		{paymentCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("payment_registration_id"),
		}},
		{paymentCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("payment_email"),
		}},
		{campsCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "participantCount", Value: -1}},
			Options: options.Index().SetName("camps_participant_count"),
		}},
	}

	var created []string
	for _, spec := range specs {
		name, err := db.Collection(spec.coll).Indexes().CreateOne(ctx, spec.model)
		if err != nil {
			return created, fmt.Errorf("create index on %s: %w", spec.coll, err)
		}
		created = append(created, spec.coll+"."+name)
	}
	return created, nil
}
