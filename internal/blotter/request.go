package blotter

import "hapsay-service/internal/models"

// CreateBlotterRequest keeps the camelCase body the mobile client sends.
type CreateBlotterRequest struct {
	UserID              string              `json:"userId" validate:"required"`
	IncidentType        string              `json:"incidentType" validate:"required,oneof=Theft Robbery Assault Other"`
	IncidentDate        string              `json:"incidentDate" validate:"required"`
	IncidentTime        string              `json:"incidentTime" validate:"required"`
	IncidentDescription string              `json:"incidentDescription" validate:"required"`
	OfficerID           string              `json:"officerId"`
	Location            *models.GeoPoint    `json:"location"`
	Attachments         []models.Attachment `json:"attachments"`
}

type UpdateBlotterRequest struct {
	IncidentType        *string              `json:"incidentType,omitempty" validate:"omitempty,oneof=Theft Robbery Assault Other"`
	IncidentDate        *string              `json:"incidentDate,omitempty"`
	IncidentTime        *string              `json:"incidentTime,omitempty"`
	IncidentDescription *string              `json:"incidentDescription,omitempty"`
	OfficerID           *string              `json:"officerId,omitempty"`
	Location            *models.GeoPoint     `json:"location,omitempty"`
	Attachments         *[]models.Attachment `json:"attachments,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListFilter narrows the blotter list; empty fields match everything.
type ListFilter struct {
	Status    string `form:"status"`
	UserID    string `form:"user_id"`
	OfficerID string `form:"officer_id"`
}
