package tenant

import (
	"context"
)

// TenantRepository defines data access for tenants and their settings.
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (Tenant, error)
	GetBySlug(ctx context.Context, slug string) (Tenant, error)
	GetSettings(ctx context.Context, tenantID string) (Settings, error)
	UpdateSettings(ctx context.Context, settings Settings) error
}
