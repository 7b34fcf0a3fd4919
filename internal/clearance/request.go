package clearance

import "hapsay-service/internal/models"

type CreateClearanceRequest struct {
	UserID          string   `json:"userId" validate:"required"`
	Purpose         string   `json:"purpose" validate:"required"`
	StationID       string   `json:"stationId"`
	AppointmentDate string   `json:"appointmentDate"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
}

type UpdateClearanceRequest struct {
	Purpose         *string         `json:"purpose,omitempty"`
	StationID       *string         `json:"stationId,omitempty"`
	AppointmentDate *string         `json:"appointmentDate,omitempty"`
	Price           *float64        `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status          *string         `json:"status,omitempty"`
	Payment         *models.Payment `json:"payment,omitempty"`
}

type ListFilter struct {
	Status string `form:"status"`
	UserID string `form:"user_id"`
}
