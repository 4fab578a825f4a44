package tenant

import (
	"context"
)

// TenantService defines business logic for tenant profile and settings.
type TenantService interface {
	// GetMyTenant returns the authenticated admin's tenant profile
	GetMyTenant(ctx context.Context) (TenantResponse, error)

	// GetSettings returns the tenant's aggregation settings
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// UpdateSettings applies a partial settings update after validation
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
