// models/brand.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand statuses
const (
	BrandStatusPilot  = "Pilot"
	BrandStatusActive = "Active"
)

// Campaign statuses, written as-is by the status buttons
const (
	CampaignStatusDraft   = "draft"
	CampaignStatusActive  = "active"
	CampaignStatusPaused  = "paused"
	CampaignStatusDeleted = "deleted"
)

type Brand struct {
	ID           primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string              `json:"name" bson:"name"`
	IndustryType string              `json:"industryType,omitempty" bson:"industryType,omitempty"`
	Website      string              `json:"website,omitempty" bson:"website,omitempty"`
	City         string              `json:"city,omitempty" bson:"city,omitempty"`
	GSTNumber    string              `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	Status       string              `json:"status" bson:"status"` // "Pilot" or "Active"
	AdBudget     float64             `json:"adBudget,omitempty" bson:"adBudget,omitempty"`
	IsVerified   bool                `json:"isVerified" bson:"isVerified"`
	POC          BrandPOC            `json:"poc" bson:"poc"`
	LogoURL      string              `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	Campaigns    map[string]Campaign `json:"campaigns,omitempty" bson:"campaigns,omitempty"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// BrandPOC is the brand's point of contact. Credentials are stored as
// submitted; the dashboard shares them with the brand's own portal.
type BrandPOC struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password,omitempty" bson:"password,omitempty"`
}

// Campaign is a value in the brand's campaign map, keyed by campaign id
type Campaign struct {
	Objective   string           `json:"objective,omitempty" bson:"objective,omitempty"`
	Budget      float64          `json:"budget,omitempty" bson:"budget,omitempty"`
	Status      string           `json:"status" bson:"status"`
	CPVE        float64          `json:"cpve,omitempty" bson:"cpve,omitempty"`
	Schedule    CampaignSchedule `json:"schedule,omitempty" bson:"schedule,omitempty"`
	LocationIDs []string         `json:"locationIds,omitempty" bson:"locationIds,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type CampaignSchedule struct {
	StartDate string `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

// CampaignUpdateRequest merges partial campaign fields into campaigns.<id>.*
type CampaignUpdateRequest struct {
	CampaignID string                 `json:"campaignId"`
	Data       map[string]interface{} `json:"data"`
}

// TargetsLocation reports whether any campaign of the brand lists the given
// location id. Used for the targetLocation list filter, which cannot be a
// database predicate against the campaign map.
func (b *Brand) TargetsLocation(locationID string) bool {
	for _, campaign := range b.Campaigns {
		for _, id := range campaign.LocationIDs {
			if id == locationID {
				return true
			}
		}
	}
	return false
}
