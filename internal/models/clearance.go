package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ClearancePending = "pending"

type Clearance struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UserID          primitive.ObjectID  `bson:"user_id" json:"user_id"`
	StationID       *primitive.ObjectID `bson:"station_id,omitempty" json:"station_id,omitempty"`
	Purpose         string              `bson:"purpose" json:"purpose"`
	AppointmentDate *time.Time          `bson:"appointment_date,omitempty" json:"appointment_date,omitempty"`
	Price           *float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status          string              `bson:"status" json:"status"`
	Payment         *Payment            `bson:"payment,omitempty" json:"payment,omitempty"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

// Payment is stored as reported by the client; nothing is charged here.
type Payment struct {
	Processor     string `bson:"processor,omitempty" json:"processor,omitempty"`
	TransactionID string `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	Status        string `bson:"status,omitempty" json:"status,omitempty"`
}

type ClearanceView struct {
	Clearance `bson:",inline"`
	User      *User `bson:"user,omitempty" json:"user,omitempty"`
}
