package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// newMongoDBClient initializes a mongoDB client for the given connection URI
// and verifies the connection.
func newMongoDBClient(ctx context.Context, connectionURI string) (*mongo.Client, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(connectionURI)
	client, err := mongo.Connect(ctxWithTimeout, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	err = client.Ping(ctxWithTimeout, readpref.Primary())
	if err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}
