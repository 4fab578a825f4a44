package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/database"
)

type tenantRepository struct {
	db *database.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepository{db: db}
}

// GetByID retrieves a tenant by ID
func (r *tenantRepository) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var t tenant.Tenant
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Tenant{}, tenant.ErrTenantNotFound
		}
		return tenant.Tenant{}, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// GetBySlug retrieves a tenant by its kiosk slug
func (r *tenantRepository) GetBySlug(ctx context.Context, slug string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, slug, created_at, updated_at
		FROM tenants
		WHERE slug = $1
	`

	var t tenant.Tenant
	err := q.QueryRow(ctx, query, slug).Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Tenant{}, tenant.ErrTenantNotFound
		}
		return tenant.Tenant{}, fmt.Errorf("failed to get tenant by slug: %w", err)
	}

	return t, nil
}

// GetSettings retrieves the tenant's aggregation settings
func (r *tenantRepository) GetSettings(ctx context.Context, tenantID string) (tenant.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tenant_id, timezone, rounding_minutes, week_starts_on,
		       overtime_threshold_minutes, overtime_multiplier, updated_at
		FROM tenant_settings
		WHERE tenant_id = $1
	`

	var s tenant.Settings
	err := q.QueryRow(ctx, query, tenantID).Scan(
		&s.TenantID,
		&s.Timezone,
		&s.RoundingMinutes,
		&s.WeekStartsOn,
		&s.OvertimeThresholdMinutes,
		&s.OvertimeMultiplier,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Settings{}, tenant.ErrSettingsNotFound
		}
		return tenant.Settings{}, fmt.Errorf("failed to get tenant settings: %w", err)
	}

	return s, nil
}

// UpdateSettings upserts the tenant's aggregation settings
func (r *tenantRepository) UpdateSettings(ctx context.Context, settings tenant.Settings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenant_settings (tenant_id, timezone, rounding_minutes, week_starts_on,
		                             overtime_threshold_minutes, overtime_multiplier, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			rounding_minutes = EXCLUDED.rounding_minutes,
			week_starts_on = EXCLUDED.week_starts_on,
			overtime_threshold_minutes = EXCLUDED.overtime_threshold_minutes,
			overtime_multiplier = EXCLUDED.overtime_multiplier,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query,
		settings.TenantID,
		settings.Timezone,
		settings.RoundingMinutes,
		settings.WeekStartsOn,
		settings.OvertimeThresholdMinutes,
		settings.OvertimeMultiplier,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to update tenant settings: %w", err)
	}

	return nil
}
