package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IncidentType string

const (
	IncidentTheft   IncidentType = "Theft"
	IncidentRobbery IncidentType = "Robbery"
	IncidentAssault IncidentType = "Assault"
	IncidentOther   IncidentType = "Other"
)

func (t IncidentType) Valid() bool {
	switch t {
	case IncidentTheft, IncidentRobbery, IncidentAssault, IncidentOther:
		return true
	}
	return false
}

type BlotterStatus string

const (
	BlotterPending       BlotterStatus = "Pending"
	BlotterUnderReview   BlotterStatus = "Under Review"
	BlotterInvestigating BlotterStatus = "Investigating"
	BlotterResolved      BlotterStatus = "Resolved"
	BlotterClosed        BlotterStatus = "Closed"
)

var blotterTransitions = map[BlotterStatus][]BlotterStatus{
	BlotterPending:       {BlotterUnderReview, BlotterClosed},
	BlotterUnderReview:   {BlotterInvestigating, BlotterClosed},
	BlotterInvestigating: {BlotterResolved, BlotterClosed},
	BlotterResolved:      nil,
	BlotterClosed:        nil,
}

func (s BlotterStatus) Valid() bool {
	_, ok := blotterTransitions[s]
	return ok
}

// CanTransition reports whether a report may move from s to next.
// Re-applying the current status is always allowed.
func (s BlotterStatus) CanTransition(next BlotterStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range blotterTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Blotter struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UserID          primitive.ObjectID  `bson:"user_id" json:"user_id"`
	Incident        Incident            `bson:"incident" json:"incident"`
	Attachments     []Attachment        `bson:"attachments" json:"attachments"`
	AssignedOfficer *primitive.ObjectID `bson:"assigned_officer,omitempty" json:"assigned_officer,omitempty"`
	Status          BlotterStatus       `bson:"status" json:"status"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

type Incident struct {
	Type        IncidentType `bson:"incident_type" json:"incident_type"`
	Date        time.Time    `bson:"date" json:"date"`
	Time        string       `bson:"time" json:"time"`
	Location    *GeoPoint    `bson:"location,omitempty" json:"location,omitempty"`
	Description string       `bson:"description" json:"description"`
}

type Attachment struct {
	Type string `bson:"attachment_type" json:"attachment_type"`
	URL  string `bson:"url" json:"url"`
}

// GeoPoint is a numeric coordinate pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// BlotterView is a report with its reporter and assigned officer populated.
type BlotterView struct {
	Blotter `bson:",inline"`
	User    *User    `bson:"user,omitempty" json:"user,omitempty"`
	Officer *Officer `bson:"officer,omitempty" json:"officer,omitempty"`
}
