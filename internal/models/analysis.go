package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessAnalysis is one voice-analysis run: the transcript that came out of
// speech recognition plus the structured analysis generated from it.
// Records are append-only; nothing updates or deletes them.
type BusinessAnalysis struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InputText string             `bson:"inputText" json:"inputText"`
	Analysis  AnalysisResult     `bson:"analysis" json:"analysis"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AnalysisResult is the shape the generative model is asked to return.
// Consumers must tolerate missing fields; only JSON validity is enforced.
type AnalysisResult struct {
	BusinessType    string           `bson:"businessType" json:"businessType"`
	BusinessStage   string           `bson:"businessStage" json:"businessStage"`
	KeyProblems     []KeyProblem     `bson:"keyProblems" json:"keyProblems"`
	ActionablePlans []ActionablePlan `bson:"actionablePlans" json:"actionablePlans"`
	MarketingFocus  []string         `bson:"marketingFocus" json:"marketingFocus"`
	QuickWins       []string         `bson:"quickWins" json:"quickWins"`
}

type KeyProblem struct {
	Problem  string `bson:"problem" json:"problem"`
	Severity string `bson:"severity" json:"severity"`
	Category string `bson:"category" json:"category"`
}

type ActionablePlan struct {
	ID              string   `bson:"id" json:"id"`
	Title           string   `bson:"title" json:"title"`
	Description     string   `bson:"description" json:"description"`
	Priority        string   `bson:"priority" json:"priority"`
	Category        string   `bson:"category" json:"category"`
	EstimatedImpact string   `bson:"estimatedImpact" json:"estimatedImpact"`
	Tools           []string `bson:"tools" json:"tools"`
}
