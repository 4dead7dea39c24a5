// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppUser is an end customer of the platform (not a dashboard admin)
type AppUser struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Age         int                `json:"age,omitempty" bson:"age,omitempty"`
	AgeBand     string             `json:"ageBand,omitempty" bson:"ageBand,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Profession  string             `json:"profession,omitempty" bson:"profession,omitempty"`
	LifeStage   string             `json:"lifeStage,omitempty" bson:"lifeStage,omitempty"`
	Address     string             `json:"address,omitempty" bson:"address,omitempty"`
	City        string             `json:"city,omitempty" bson:"city,omitempty"`
	Campus      string             `json:"campus,omitempty" bson:"campus,omitempty"`
	IsBlocked   bool               `json:"isBlocked" bson:"isBlocked"`
	LastLoginAt time.Time          `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BlockUserRequest is the payload for the suspension toggle. The value is set
// unconditionally; callers assert final state rather than transition legality.
type BlockUserRequest struct {
	ID        string `json:"id" validate:"required"`
	IsBlocked bool   `json:"isBlocked"`
}
