package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfficerStatus string

const (
	OfficerActive    OfficerStatus = "active"
	OfficerInactive  OfficerStatus = "inactive"
	OfficerSuspended OfficerStatus = "suspended"
)

func (s OfficerStatus) Valid() bool {
	switch s {
	case OfficerActive, OfficerInactive, OfficerSuspended:
		return true
	}
	return false
}

// Officer doubles as the admin account of the records system.
type Officer struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Email       string              `bson:"email" json:"email"`
	Password    string              `bson:"password" json:"-"`
	FirstName   string              `bson:"first_name" json:"first_name"`
	LastName    string              `bson:"last_name" json:"last_name"`
	BadgeNumber string              `bson:"badge_number,omitempty" json:"badge_number,omitempty"`
	Rank        string              `bson:"rank,omitempty" json:"rank,omitempty"`
	StationID   *primitive.ObjectID `bson:"station_id,omitempty" json:"station_id,omitempty"`
	Contact     *OfficerContact     `bson:"contact,omitempty" json:"contact,omitempty"`
	Status      OfficerStatus       `bson:"status" json:"status"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

type OfficerContact struct {
	MobileNumber string `bson:"mobile_number,omitempty" json:"mobile_number,omitempty"`
	RadioID      string `bson:"radio_id,omitempty" json:"radio_id,omitempty"`
}

// OfficerView is an officer with its station populated.
type OfficerView struct {
	Officer `bson:",inline"`
	Station *StationSummary `bson:"station,omitempty" json:"station,omitempty"`
}

// OfficerSummary is the sanitized officer shape returned by auth endpoints.
type OfficerSummary struct {
	ID        primitive.ObjectID `json:"_id"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Email     string             `json:"email"`
}

func (o *Officer) Summary() OfficerSummary {
	return OfficerSummary{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
	}
}
