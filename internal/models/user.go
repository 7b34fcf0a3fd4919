package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserInactive  UserStatus = "Inactive"
	UserSuspended UserStatus = "Suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserSuspended:
		return true
	}
	return false
}

// User is an account holder who files reports and applications.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	PhoneNumber  string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	PersonalInfo PersonalInfo       `bson:"personal_info" json:"personal_info"`
	Address      *Address           `bson:"address,omitempty" json:"address,omitempty"`
	Status       UserStatus         `bson:"status" json:"status"`
	LastActivity *time.Time         `bson:"last_activity,omitempty" json:"last_activity,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type PersonalInfo struct {
	GivenName   string     `bson:"given_name" json:"given_name"`
	MiddleName  string     `bson:"middle_name" json:"middle_name"`
	Surname     string     `bson:"surname" json:"surname"`
	Qualifier   string     `bson:"qualifier,omitempty" json:"qualifier,omitempty"`
	Sex         string     `bson:"sex,omitempty" json:"sex,omitempty"`
	CivilStatus string     `bson:"civil_status,omitempty" json:"civil_status,omitempty"`
	Birthday    *time.Time `bson:"birthday,omitempty" json:"birthday,omitempty"`
	PWD         bool       `bson:"pwd" json:"pwd"`
	Nationality string     `bson:"nationality,omitempty" json:"nationality,omitempty"`
}

type Address struct {
	HouseNo    string `bson:"house_no,omitempty" json:"house_no,omitempty"`
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	Barangay   string `bson:"barangay" json:"barangay"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Province   string `bson:"province" json:"province"`
	Country    string `bson:"country" json:"country"`
}

// UserSummary is the sanitized account shape returned by auth endpoints.
type UserSummary struct {
	ID         primitive.ObjectID `json:"_id"`
	GivenName  string             `json:"given_name"`
	MiddleName string             `json:"middle_name"`
	Surname    string             `json:"surname"`
	Email      string             `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:         u.ID,
		GivenName:  u.PersonalInfo.GivenName,
		MiddleName: u.PersonalInfo.MiddleName,
		Surname:    u.PersonalInfo.Surname,
		Email:      u.Email,
	}
}
