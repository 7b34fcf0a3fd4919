package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Station struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	CustomID   string               `bson:"custom_id" json:"custom_id"`
	Name       string               `bson:"name" json:"name"`
	Address    string               `bson:"address" json:"address"`
	Contact    StationContact       `bson:"contact" json:"contact"`
	Location   StationLocation      `bson:"location" json:"location"`
	OfficerIDs []primitive.ObjectID `bson:"officer_ids" json:"officer_ids"`
	CreatedAt  time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updated_at"`
}

type StationContact struct {
	PhoneNumber string `bson:"phone_number" json:"phone_number"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Landline    string `bson:"landline" json:"landline"`
}

// StationLocation keeps coordinates as entered; they are never computed on.
type StationLocation struct {
	Latitude  string `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude string `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// StationView is a station with its roster populated.
type StationView struct {
	Station  `bson:",inline"`
	Officers []Officer `bson:"officers" json:"officers"`
}

type StationSummary struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address" json:"address"`
	Contact *StationContact    `bson:"contact,omitempty" json:"contact,omitempty"`
}
