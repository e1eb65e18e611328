package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshith29124/craftconnect/internal/models"
)

// InsertAnalysis appends a new business analysis record.
func (s *Store) InsertAnalysis(ctx context.Context, a *models.BusinessAnalysis) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Timestamp.IsZero() {
		a.Timestamp = now
	}

	if _, err := s.analyses.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}
