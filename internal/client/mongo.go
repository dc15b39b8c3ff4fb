package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoOnce   sync.Once
	mongoClient *mongo.Client
	mongoErr    error
)

// MongoClient returns the process-wide client, connecting on first use.
// Concurrent callers during startup share the single connection attempt.
func MongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	mongoOnce.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			mongoErr = fmt.Errorf("connect to mongodb: %w", err)
			return
		}
		if err := c.Ping(connectCtx, nil); err != nil {
			mongoErr = fmt.Errorf("ping mongodb: %w", err)
			return
		}
		mongoClient = c
	})

	return mongoClient, mongoErr
}
