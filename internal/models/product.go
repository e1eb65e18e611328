package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories recognized by the marketplace. Anything the AI or the
// caller supplies outside this set normalizes to CategoryOther.
const (
	CategoryJewelry    = "jewelry"
	CategoryTextiles   = "textiles"
	CategoryPottery    = "pottery"
	CategoryWoodcraft  = "woodcraft"
	CategoryMetalwork  = "metalwork"
	CategoryEmbroidery = "embroidery"
	CategoryPainting   = "painting"
	CategoryOther      = "other"
)

// ValidCategories lists every accepted product category.
var ValidCategories = []string{
	CategoryJewelry,
	CategoryTextiles,
	CategoryPottery,
	CategoryWoodcraft,
	CategoryMetalwork,
	CategoryEmbroidery,
	CategoryPainting,
	CategoryOther,
}

// IsValidCategory reports whether c is one of the declared categories.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

// DefaultArtisanID is used when a request carries no owner id.
const DefaultArtisanID = "demo-artisan"

type Product struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name               string              `bson:"name" json:"name"`
	Description        string              `bson:"description" json:"description"`
	Price              float64             `bson:"price" json:"price"`
	Category           string              `bson:"category" json:"category"`
	ImagePath          string              `bson:"imagePath" json:"imagePath"`
	ImageAnalysis      ImageAnalysis       `bson:"imageAnalysis" json:"imageAnalysis"`
	BusinessType       string              `bson:"businessType,omitempty" json:"businessType,omitempty"`
	Region             string              `bson:"region,omitempty" json:"region,omitempty"`
	PricingSuggestions *PricingSuggestions `bson:"pricingSuggestions,omitempty" json:"pricingSuggestions,omitempty"`
	ArtisanID          string              `bson:"artisanId" json:"artisanId"`
	IsActive           bool                `bson:"isActive" json:"isActive"`
	Views              int64               `bson:"views" json:"views"`
	Likes              int64               `bson:"likes" json:"likes"`
	Sales              int64               `bson:"sales" json:"sales"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type ImageAnalysis struct {
	Labels []ImageLabel `bson:"labels" json:"labels"`
}

// ImageLabel is one label annotation copied verbatim from the vision service.
type ImageLabel struct {
	Description string  `bson:"description" json:"description"`
	Score       float32 `bson:"score" json:"score"`
	Confidence  float32 `bson:"confidence" json:"confidence"`
}

// PricingSuggestions is the model-generated pricing block, split across the
// three market tiers the prompt asks for.
type PricingSuggestions struct {
	LocalMarket      MarketTier `bson:"localMarket" json:"localMarket"`
	PremiumMarket    MarketTier `bson:"premiumMarket" json:"premiumMarket"`
	ExportMarket     MarketTier `bson:"exportMarket" json:"exportMarket"`
	RecommendedPrice float64    `bson:"recommendedPrice" json:"recommendedPrice"`
	PricingStrategy  string     `bson:"pricingStrategy" json:"pricingStrategy"`
	ValueProposition string     `bson:"valueProposition" json:"valueProposition"`
}

type MarketTier struct {
	Min       float64 `bson:"min" json:"min"`
	Max       float64 `bson:"max" json:"max"`
	Reasoning string  `bson:"reasoning" json:"reasoning"`
}
