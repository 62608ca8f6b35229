package dto

import "questify_backend/internal/api"

// SignupResponse is the body for a successful registration.
// Only the public user fields are returned, never the password hash.
type SignupResponse struct {
	User api.UserResponse `json:"user"`
}

// LoginResponse is the body for a successful login.
type LoginResponse struct {
	Token string           `json:"token"`
	User  api.UserResponse `json:"user"`
}
