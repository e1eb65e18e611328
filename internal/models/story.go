package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandStory is a generated-and-saved artisan brand narrative. It is created
// once per save action and mutable only via the IsActive flag.
type BrandStory struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArtisanID            string             `bson:"artisanId" json:"artisanId"`
	BusinessType         string             `bson:"businessType" json:"businessType"`
	Region               string             `bson:"region" json:"region"`
	TraditionalTechnique string             `bson:"traditionalTechnique" json:"traditionalTechnique"`
	StoryTitle           string             `bson:"storyTitle" json:"storyTitle"`
	OriginStory          string             `bson:"originStory" json:"originStory"`
	CraftJourney         string             `bson:"craftJourney" json:"craftJourney"`
	CulturalSignificance string             `bson:"culturalSignificance" json:"culturalSignificance"`
	UniqueValue          string             `bson:"uniqueValue" json:"uniqueValue"`
	ModernRelevance      string             `bson:"modernRelevance" json:"modernRelevance"`
	EmotionalConnection  string             `bson:"emotionalConnection" json:"emotionalConnection"`
	BrandTagline         string             `bson:"brandTagline" json:"brandTagline"`
	KeyMessages          []string           `bson:"keyMessages" json:"keyMessages"`
	StorytellingTips     []string           `bson:"storytellingTips" json:"storytellingTips"`
	IsActive             bool               `bson:"isActive" json:"isActive"`
	Views                int64              `bson:"views" json:"views"`
	Shares               int64              `bson:"shares" json:"shares"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}
