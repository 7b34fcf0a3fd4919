package station

type CreateStationRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Landline    string `json:"landline" validate:"required"`
	Email       string `json:"email" validate:"omitempty,emailaddr"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// UpdateStationRequest merges into the stored station. Required fields may
// be omitted but not blanked.
type UpdateStationRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Landline    *string `json:"landline,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,emailaddr"`
	Latitude    *string `json:"latitude,omitempty"`
	Longitude   *string `json:"longitude,omitempty"`
}
