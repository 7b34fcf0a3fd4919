package announcement

type CreateAnnouncementRequest struct {
	StationID string `json:"station_id"`
	Title     string `json:"title" validate:"required"`
	Details   string `json:"details" validate:"required"`
	Date      string `json:"date"`
}

type UpdateAnnouncementRequest struct {
	StationID *string `json:"station_id,omitempty"`
	Title     *string `json:"title,omitempty"`
	Details   *string `json:"details,omitempty"`
	Date      *string `json:"date,omitempty"`
}

type ListFilter struct {
	StationID string `form:"station_id"`
}
