package bootstrap

import (
	"context"
	"fmt"
	"log"

	"content-planner/config"
	"content-planner/database"
	"content-planner/internal/repository"
)

// OpenStore connects the key-value backend named by cfg.StorageDriver.
func OpenStore(ctx context.Context, cfg config.Config) (repository.KeyValue, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		log.Println("Using in-memory store; posts are lost on exit")
		return repository.NewMemoryKV(), nil

	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		if err := EnsureKVIndexes(ctx, coll); err != nil {
			log.Printf("[WARN] ensure kv indexes: %v", err)
		}
		return repository.NewMongoKV(client, cfg.MongoDB, cfg.MongoCollection), nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		kv, err := repository.NewSQLiteKV(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return kv, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
