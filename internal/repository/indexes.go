package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the consistency rules rely on:
// one email per user, and at most one application per (job, applicant).
// Uniqueness lives at the storage layer so concurrent writes cannot race
// past an application-level existence check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("applications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "job", Value: 1}, {Key: "applicant", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
