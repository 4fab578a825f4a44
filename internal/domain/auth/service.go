package auth

import (
	"context"
)

// AuthService defines business logic for admin authentication
type AuthService interface {
	// Login authenticates an admin user with email and password
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
