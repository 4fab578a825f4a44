package office

import "context"

type OfficeRepository interface {
	Create(ctx context.Context, o Office) (Office, error)
	GetByID(ctx context.Context, id string, tenantID string) (Office, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Office, error)
	Update(ctx context.Context, req UpdateOfficeRequest) error
	Delete(ctx context.Context, id string, tenantID string) error

	// GetTimezone returns the office timezone override, empty when unset.
	GetTimezone(ctx context.Context, id string, tenantID string) (string, error)
}
