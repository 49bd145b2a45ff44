package handler

import "github.com/userhub/users-api/internal/core/domain"

// updateUserRequest mirrors the update contract: every field optional,
// password changes expressed as lastPassword + newPassword. Pointer fields
// distinguish "absent" from "empty".
type updateUserRequest struct {
	Email        *string `json:"email"        validate:"omitempty,email"`
	Username     *string `json:"username"     validate:"omitempty,min=3,max=100"`
	LastPassword *string `json:"lastPassword" validate:"omitempty,min=6,max=100"`
	NewPassword  *string `json:"newPassword"  validate:"omitempty,min=6,max=100"`
}

type updateUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
