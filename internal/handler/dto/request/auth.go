package request

import (
	"hostelops/internal/domain/staff"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (staff.Credentials, error) {
	email, err := staff.NewEmail(r.Email)
	if err != nil {
		return staff.Credentials{}, err
	}
	return staff.NewCredentials(email, r.Password), nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
