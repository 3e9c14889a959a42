package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner executes a function inside a single storage transaction so
// multi-document writes (cascade deletes) cannot partially apply.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoTxRunner runs transactions against a Mongo client session.
type MongoTxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) TxRunner {
	return &MongoTxRunner{client: client}
}

func (r *MongoTxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
