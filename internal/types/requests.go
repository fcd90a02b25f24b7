package types

import (
	"github.com/google/uuid"
)

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest carries form-encoded credentials
type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// UserResponse is the public view of a user; it never carries the password hash
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ListQuery holds pagination parameters. Skip is accepted as an alias of offset.
type ListQuery struct {
	Offset *int `form:"offset" binding:"omitempty,min=0"`
	Skip   *int `form:"skip" binding:"omitempty,min=0"`
	Limit  *int `form:"limit" binding:"omitempty,min=1"`
}
