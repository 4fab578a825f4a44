package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// ListManagerIDs returns the IDs of all owner and admin users of the
	// tenant, for notification fan-out.
	ListManagerIDs(ctx context.Context, tenantID string) ([]string, error)
}
