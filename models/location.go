// models/location.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location statuses. Deleted marks a soft delete; the document stays put.
const (
	LocationStatusActive   = "Active"
	LocationStatusInactive = "Inactive"
	LocationStatusDeleted  = "Deleted"
)

type Location struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Slug         string             `json:"slug,omitempty" bson:"slug,omitempty"`
	Type         string             `json:"type,omitempty" bson:"type,omitempty"` // "College", "Food & Beverage", "Retail", ...
	City         string             `json:"city,omitempty" bson:"city,omitempty"`
	Area         string             `json:"area,omitempty" bson:"area,omitempty"`
	Pincode      string             `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Latitude     float64            `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude    float64            `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Geo          *GeoPoint          `json:"geo,omitempty" bson:"geo,omitempty"`
	Audience     AudienceProfile    `json:"audience,omitempty" bson:"audience,omitempty"`
	PeakHours    TimeWindow         `json:"peakHours,omitempty" bson:"peakHours,omitempty"`
	LowHours     TimeWindow         `json:"lowHours,omitempty" bson:"lowHours,omitempty"`
	Ambassador   *Ambassador        `json:"ambassador,omitempty" bson:"ambassador,omitempty"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// GeoPoint is a GeoJSON point, coordinates ordered [longitude, latitude]
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoPoint builds the geo object stored alongside the raw lat/lon fields
func NewGeoPoint(latitude, longitude float64) *GeoPoint {
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

type AudienceProfile struct {
	Primary        string `json:"primary,omitempty" bson:"primary,omitempty"`
	AgeBand        string `json:"ageBand,omitempty" bson:"ageBand,omitempty"`
	GenderSkew     string `json:"genderSkew,omitempty" bson:"genderSkew,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty" bson:"educationLevel,omitempty"`
	CampusType     string `json:"campusType,omitempty" bson:"campusType,omitempty"`
	FootfallLevel  string `json:"footfallLevel,omitempty" bson:"footfallLevel,omitempty"`
}

type TimeWindow struct {
	From string `json:"from,omitempty" bson:"from,omitempty"`
	To   string `json:"to,omitempty" bson:"to,omitempty"`
}

// Ambassador is the campus representative embedded on a location document.
// There is no ambassadors collection; listings scan locations instead.
type Ambassador struct {
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Course    string    `json:"course,omitempty" bson:"course,omitempty"`
	Year      string    `json:"year,omitempty" bson:"year,omitempty"`
	Status    string    `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// AmbassadorRecord is a derived listing row: the embedded ambassador plus the
// identity of the location carrying it.
type AmbassadorRecord struct {
	LocationID   primitive.ObjectID `json:"locationId" bson:"locationId"`
	LocationName string             `json:"locationName" bson:"locationName"`
	City         string             `json:"city,omitempty" bson:"city,omitempty"`
	Ambassador   Ambassador         `json:"ambassador" bson:"ambassador"`
}

// BulkLocationRequest is the payload for the batched location import
type BulkLocationRequest struct {
	Locations []LocationImport `json:"locations" validate:"required,min=1,dive"`
}

// LocationImport is one row of a bulk import; geo is derived server-side
type LocationImport struct {
	Name      string  `json:"name" validate:"required"`
	Slug      string  `json:"slug,omitempty"`
	Type      string  `json:"type,omitempty"`
	City      string  `json:"city,omitempty"`
	Area      string  `json:"area,omitempty"`
	Pincode   string  `json:"pincode,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status,omitempty"`
}

// FilterOptions is the cached distinct-values payload for the list filters
type FilterOptions struct {
	Types  []string `json:"types"`
	Cities []string `json:"cities"`
	Areas  []string `json:"areas"`
}
