package officer

import "hapsay-service/internal/models"

// Field order decides which failure is reported first.
type CreateOfficerRequest struct {
	FirstName   string                 `json:"first_name" validate:"required"`
	LastName    string                 `json:"last_name" validate:"required"`
	Password    string                 `json:"password" validate:"required,min=6"`
	Email       string                 `json:"email" validate:"required,emailaddr"`
	BadgeNumber string                 `json:"badge_number"`
	Rank        string                 `json:"rank"`
	StationID   string                 `json:"station_id"`
	Contact     *models.OfficerContact `json:"contact"`
	Status      string                 `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

type UpdateOfficerRequest struct {
	FirstName   *string                `json:"first_name,omitempty"`
	LastName    *string                `json:"last_name,omitempty"`
	Password    *string                `json:"password,omitempty"`
	Email       *string                `json:"email,omitempty" validate:"omitempty,emailaddr"`
	BadgeNumber *string                `json:"badge_number,omitempty"`
	Rank        *string                `json:"rank,omitempty"`
	StationID   *string                `json:"station_id,omitempty"`
	Contact     *models.OfficerContact `json:"contact,omitempty"`
	Status      *string                `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
