package group

import "context"

type GroupRepository interface {
	Create(ctx context.Context, g Group) (Group, error)
	GetByID(ctx context.Context, id string, tenantID string) (Group, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Group, error)
	Update(ctx context.Context, req UpdateGroupRequest) error
	Delete(ctx context.Context, id string, tenantID string) error
}
