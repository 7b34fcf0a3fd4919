package sos

import "hapsay-service/internal/models"

type CreateSOSRequest struct {
	UserID           string           `json:"userId" validate:"required"`
	NearestStationID string           `json:"nearestStationId" validate:"required"`
	Location         *models.GeoPoint `json:"location" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ListFilter struct {
	Status    string `form:"status"`
	StationID string `form:"station_id"`
}
