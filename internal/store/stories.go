package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshith29124/craftconnect/internal/models"
)

// InsertBrandStory stores a caller-supplied brand story as-is.
func (s *Store) InsertBrandStory(ctx context.Context, story *models.BrandStory) error {
	now := time.Now().UTC()
	story.ID = primitive.NewObjectID()
	story.CreatedAt = now
	story.UpdatedAt = now

	if _, err := s.stories.InsertOne(ctx, story); err != nil {
		return fmt.Errorf("failed to insert brand story: %w", err)
	}
	return nil
}

// ListBrandStories returns an artisan's active stories, newest first.
func (s *Store) ListBrandStories(ctx context.Context, artisanID string) ([]models.BrandStory, error) {
	filter := bson.M{"artisanId": artisanID, "isActive": true}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.stories.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list brand stories: %w", err)
	}
	defer cur.Close(ctx)

	stories := []models.BrandStory{}
	if err := cur.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("failed to decode brand stories: %w", err)
	}
	return stories, nil
}
