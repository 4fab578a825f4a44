package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punch events.
// All methods include tenantID to prevent cross-tenant data access.
type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)
	GetByID(ctx context.Context, id string, tenantID string) (Punch, error)
	List(ctx context.Context, filter PunchFilter, tenantID string) ([]Punch, int64, error)

	// ListForRange returns unvoided punches for one employee ordered
	// ascending by occurred_at with creation order breaking ties. This
	// is the report engine's input feed.
	ListForRange(ctx context.Context, employeeID string, from, to time.Time, tenantID string) ([]Punch, error)

	// GetLast returns the employee's most recent unvoided punch.
	GetLast(ctx context.Context, employeeID string, tenantID string) (*Punch, error)

	// Void marks a punch as superseded. The row itself is never updated
	// beyond the void markers.
	Void(ctx context.Context, id string, tenantID string, voidedBy string) error
}
