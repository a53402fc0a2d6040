package domain

import (
	"errors"

	"replate-backend/entities"
)

var (
	MessageSuccessLogin   = "login successful"
	MessageSuccessGetUser = "user retrieved successfully"

	MessageFailedLogin   = "failed to login"
	MessageFailedGetUser = "failed to retrieve user"

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID        string        `json:"id"`
		Email     string        `json:"email"`
		Name      string        `json:"name"`
		Role      entities.Role `json:"role"`
		CanteenID string        `json:"canteen_id,omitempty"`
		NGOID     string        `json:"ngo_id,omitempty"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
