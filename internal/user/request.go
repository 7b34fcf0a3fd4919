package user

import "hapsay-service/internal/models"

// UpdateUserRequest merges into the stored account. A password sent here
// is ignored; there is no field to receive it.
type UpdateUserRequest struct {
	Email        *string              `json:"email,omitempty" validate:"omitempty,emailaddr"`
	PhoneNumber  *string              `json:"phone_number,omitempty"`
	PersonalInfo *PersonalInfoRequest `json:"personal_info,omitempty"`
	Address      *models.Address      `json:"address,omitempty"`
	Status       *string              `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Suspended"`
}

type PersonalInfoRequest struct {
	GivenName   *string `json:"given_name,omitempty"`
	MiddleName  *string `json:"middle_name,omitempty"`
	Surname     *string `json:"surname,omitempty"`
	Qualifier   *string `json:"qualifier,omitempty"`
	Sex         *string `json:"sex,omitempty" validate:"omitempty,oneof=Male Female"`
	CivilStatus *string `json:"civil_status,omitempty"`
	Birthday    *string `json:"birthday,omitempty"`
	PWD         *bool   `json:"pwd,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
