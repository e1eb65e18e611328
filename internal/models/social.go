package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Social platforms the content generator targets.
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
	PlatformWhatsApp  = "whatsapp"
)

var ValidPlatforms = []string{
	PlatformInstagram,
	PlatformFacebook,
	PlatformYouTube,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformWhatsApp,
}

func IsValidPlatform(p string) bool {
	for _, v := range ValidPlatforms {
		if p == v {
			return true
		}
	}
	return false
}

// Content types per platform format.
const (
	ContentTypePost     = "post"
	ContentTypeStory    = "story"
	ContentTypeReel     = "reel"
	ContentTypeVideo    = "video"
	ContentTypeCarousel = "carousel"
	ContentTypeLive     = "live"
)

var ValidContentTypes = []string{
	ContentTypePost,
	ContentTypeStory,
	ContentTypeReel,
	ContentTypeVideo,
	ContentTypeCarousel,
	ContentTypeLive,
}

func IsValidContentType(t string) bool {
	for _, v := range ValidContentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Lifecycle statuses. Transitions are caller-driven; any status may be set
// from any other.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var ValidStatuses = []string{
	StatusDraft,
	StatusScheduled,
	StatusPublished,
	StatusArchived,
}

func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// SocialMediaContent is one generated-and-saved piece of platform content.
type SocialMediaContent struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArtisanID            string             `bson:"artisanId" json:"artisanId"`
	Platform             string             `bson:"platform" json:"platform"`
	ContentType          string             `bson:"contentType" json:"contentType"`
	Caption              string             `bson:"caption" json:"caption"`
	Hashtags             []string           `bson:"hashtags" json:"hashtags"`
	VisualSuggestions    []string           `bson:"visualSuggestions" json:"visualSuggestions"`
	PostingTime          string             `bson:"postingTime,omitempty" json:"postingTime,omitempty"`
	EngagementTactics    []string           `bson:"engagementTactics" json:"engagementTactics"`
	CallToAction         string             `bson:"callToAction,omitempty" json:"callToAction,omitempty"`
	FollowUpIdeas        []string           `bson:"followUpIdeas,omitempty" json:"followUpIdeas,omitempty"`
	PlatformSpecificTips string             `bson:"platformSpecificTips,omitempty" json:"platformSpecificTips,omitempty"`
	BusinessType         string             `bson:"businessType" json:"businessType"`
	Region               string             `bson:"region" json:"region"`
	TraditionalTechnique string             `bson:"traditionalTechnique" json:"traditionalTechnique"`
	ProductInfo          *ProductInfo       `bson:"productInfo,omitempty" json:"productInfo,omitempty"`
	Status               string             `bson:"status" json:"status"`
	ScheduledDate        *time.Time         `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`
	PublishedDate        *time.Time         `bson:"publishedDate,omitempty" json:"publishedDate,omitempty"`
	Engagement           Engagement         `bson:"engagement" json:"engagement"`
	IsActive             bool               `bson:"isActive" json:"isActive"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProductInfo is a denormalized snapshot of the product the content promotes.
type ProductInfo struct {
	Name        string  `bson:"name,omitempty" json:"name,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price,omitempty" json:"price,omitempty"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
}

type Engagement struct {
	Likes    int64 `bson:"likes" json:"likes"`
	Comments int64 `bson:"comments" json:"comments"`
	Shares   int64 `bson:"shares" json:"shares"`
	Views    int64 `bson:"views" json:"views"`
}
