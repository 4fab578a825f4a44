package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
// All methods include tenantID to prevent cross-tenant data access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, tenantID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter, tenantID string) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string, tenantID string) error

	// ListActive returns all active employees for a tenant, optionally
	// narrowed to one office, group or employee. Used by report runs.
	ListActive(ctx context.Context, tenantID string, officeID, groupID, employeeID *string) ([]Employee, error)

	// ListActivePINs returns id and pin hash for every active employee
	// of a tenant so the kiosk can match a punch to an employee.
	ListActivePINs(ctx context.Context, tenantID string) ([]PINRecord, error)
}

// PINRecord pairs an employee with their PIN hash for kiosk matching.
type PINRecord struct {
	EmployeeID string
	Name       string
	PINHash    string
}
