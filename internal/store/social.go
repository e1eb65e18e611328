package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Harshith29124/craftconnect/internal/models"
)

// SocialContentFilter narrows a content listing. ArtisanID is required;
// Platform and Status are optional.
type SocialContentFilter struct {
	ArtisanID string
	Platform  string
	Status    string
}

// InsertSocialContent stores a caller-supplied content record as-is.
func (s *Store) InsertSocialContent(ctx context.Context, c *models.SocialMediaContent) error {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.socialPost.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to insert social content: %w", err)
	}
	return nil
}

// ListSocialContent returns an artisan's active content, newest first.
func (s *Store) ListSocialContent(ctx context.Context, filter SocialContentFilter) ([]models.SocialMediaContent, error) {
	query := bson.M{"artisanId": filter.ArtisanID, "isActive": true}
	if filter.Platform != "" {
		query["platform"] = filter.Platform
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.socialPost.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list social content: %w", err)
	}
	defer cur.Close(ctx)

	content := []models.SocialMediaContent{}
	if err := cur.All(ctx, &content); err != nil {
		return nil, fmt.Errorf("failed to decode social content: %w", err)
	}
	return content, nil
}

// UpdateSocialContentStatus sets a record's lifecycle status and returns the
// updated record. publishedDate is only written when supplied. ErrNotFound is
// returned for unknown or malformed ids; no record is ever created.
func (s *Store) UpdateSocialContentStatus(ctx context.Context, id, status string, publishedDate *time.Time) (*models.SocialMediaContent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{"status": status, "updatedAt": time.Now().UTC()}
	if publishedDate != nil {
		update["publishedDate"] = *publishedDate
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.SocialMediaContent
	err = s.socialPost.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": update}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update social content status: %w", err)
	}
	return &updated, nil
}
