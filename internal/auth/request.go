package auth

import "hapsay-service/internal/models"

// Field order mirrors the order checks are reported in: presence, then
// password length, then email format.
type RegisterRequest struct {
	GivenName  string `json:"given_name" validate:"required"`
	MiddleName string `json:"middle_name" validate:"required"`
	Surname    string `json:"surname" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	Email      string `json:"email" validate:"required,emailaddr"`
}

type RegisterAdminRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Email     string `json:"email" validate:"required,emailaddr"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,emailaddr"`
}

type UserAuthResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	User    models.UserSummary `json:"user"`
}

type OfficerAuthResponse struct {
	Success bool                  `json:"success"`
	Token   string                `json:"token"`
	Officer models.OfficerSummary `json:"officer"`
}
