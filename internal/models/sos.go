package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SOSPending = "pending"

type SOSRequest struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID           primitive.ObjectID `bson:"user_id" json:"user_id"`
	NearestStationID primitive.ObjectID `bson:"nearest_station_id" json:"nearest_station_id"`
	Location         GeoPoint           `bson:"location" json:"location"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
