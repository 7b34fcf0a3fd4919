package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Announcement struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	StationID *primitive.ObjectID `bson:"station_id,omitempty" json:"station_id,omitempty"`
	Title     string              `bson:"title" json:"title"`
	Details   string              `bson:"details" json:"details"`
	Date      time.Time           `bson:"date" json:"date"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}
