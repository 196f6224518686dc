package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureKVIndexes indexes the kv collection by last write so stale keys can
// be found from the shell.
func EnsureKVIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("kv_updated_at"),
		},
	)
	return err
}
