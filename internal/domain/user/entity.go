package user

import "time"

type Role string

const (
	RoleOwner  Role = "owner"  // Tenant owner - full access
	RoleAdmin  Role = "admin"  // Can manage employees and run reports
	RoleViewer Role = "viewer" // Read-only access to reports
)

// User is an administrative account. Employees punching at the kiosk are
// not users; they are identified by PIN only.
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwner checks if user is the tenant owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// CanManage checks if user can manage employees, offices and settings
func (u *User) CanManage() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin
}
