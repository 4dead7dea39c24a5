// models/inquiry.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry types, used as the discriminant for the free-form details block
const (
	InquiryTypeSponsorship = "sponsorship"
	InquiryTypeAmbassador  = "ambassador"
	InquiryTypeAdvertise   = "advertise"
	InquiryTypeContact     = "contact"
)

// Inquiry is a website lead. Details are schema-on-read per category; the
// dashboard renders them as key/value pairs.
type Inquiry struct {
	ID        primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Type      string                 `json:"type" bson:"type"`
	Name      string                 `json:"name,omitempty" bson:"name,omitempty"`
	Email     string                 `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string                 `json:"phone,omitempty" bson:"phone,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty" bson:"details,omitempty"`
	IsRead    bool                   `json:"isRead" bson:"isRead"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}

// UnreadCounts backs the dashboard's unread badges, one bucket per type
type UnreadCounts struct {
	Total       int64 `json:"total"`
	Sponsorship int64 `json:"sponsorship"`
	Ambassador  int64 `json:"ambassador"`
	Advertise   int64 `json:"advertise"`
	Contact     int64 `json:"contact"`
}
