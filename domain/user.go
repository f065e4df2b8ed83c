package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin    = "login successful"
	MessageSuccessRegister = "register successful"
	MessageSuccessGetMe    = "user retrieved successfully"

	MessageFailedLogin    = "failed to login"
	MessageFailedRegister = "failed to register"
	MessageFailedGetMe    = "failed to retrieve user"

	ErrInvalidCredentials = errors.New("invalid identifier or password")
	ErrUserBlocked        = errors.New("your account has been blocked")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email or username are already taken")
)

type (
	User struct {
		ID         uint      `json:"id"`
		DocumentID string    `json:"documentId"`
		Username   string    `json:"username"`
		Email      string    `json:"email"`
		Blocked    bool      `json:"blocked"`
		Role       string    `json:"role,omitempty"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	LoginRequest struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=64"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	AuthResponse struct {
		JWT  string `json:"jwt"`
		User User   `json:"user"`
	}
)
