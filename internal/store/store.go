// Package store provides MongoDB persistence for all marketplace records.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an update targets a record that does not
// exist.
var ErrNotFound = errors.New("record not found")

const databaseName = "craftconnect"

// Store wraps the Mongo collections backing each entity.
type Store struct {
	client     *mongo.Client
	analyses   *mongo.Collection
	products   *mongo.Collection
	stories    *mongo.Collection
	socialPost *mongo.Collection
}

// Connect dials the document store and pings it so a bad connection string
// fails at startup rather than on the first request.
func Connect(ctx context.Context, uri string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(databaseName)
	return &Store{
		client:     client,
		analyses:   db.Collection("business_analyses"),
		products:   db.Collection("products"),
		stories:    db.Collection("brand_stories"),
		socialPost: db.Collection("social_media_content"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
