package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/master/office"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/database"
)

type officeRepository struct {
	db *database.DB
}

// NewOfficeRepository creates a new office repository
func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepository{db: db}
}

// Create creates a new office
func (r *officeRepository) Create(ctx context.Context, o office.Office) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	query := `
		INSERT INTO offices (id, tenant_id, name, address, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query, o.ID, o.TenantID, o.Name, o.Address, o.Timezone, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return office.Office{}, office.ErrOfficeNameExists
		}
		return office.Office{}, fmt.Errorf("failed to create office: %w", err)
	}

	return o, nil
}

// GetByID retrieves an office by ID
func (r *officeRepository) GetByID(ctx context.Context, id string, tenantID string) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, address, timezone, created_at, updated_at
		FROM offices
		WHERE id = $1 AND tenant_id = $2
	`

	var o office.Office
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&o.ID,
		&o.TenantID,
		&o.Name,
		&o.Address,
		&o.Timezone,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to get office: %w", err)
	}

	return o, nil
}

// GetByTenantID retrieves all offices for a tenant
func (r *officeRepository) GetByTenantID(ctx context.Context, tenantID string) ([]office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, address, timezone, created_at, updated_at
		FROM offices
		WHERE tenant_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	defer rows.Close()

	var offices []office.Office
	for rows.Next() {
		var o office.Office
		err := rows.Scan(&o.ID, &o.TenantID, &o.Name, &o.Address, &o.Timezone, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office: %w", err)
		}
		offices = append(offices, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offices: %w", err)
	}

	return offices, nil
}

// Update updates an office with partial fields
func (r *officeRepository) Update(ctx context.Context, req office.UpdateOfficeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		setClauses = append(setClauses, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Timezone != nil {
		setClauses = append(setClauses, fmt.Sprintf("timezone = $%d", argIdx))
		args = append(args, *req.Timezone)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now().UTC())
	argIdx++

	query := fmt.Sprintf(`UPDATE offices SET %s WHERE id = $%d AND tenant_id = $%d`,
		strings.Join(setClauses, ", "), argIdx, argIdx+1)
	args = append(args, req.ID, req.TenantID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return office.ErrOfficeNameExists
		}
		return fmt.Errorf("failed to update office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}

// Delete removes an office. Employees keep their office_id as NULL via
// the FK's ON DELETE SET NULL.
func (r *officeRepository) Delete(ctx context.Context, id string, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM offices WHERE id = $1 AND tenant_id = $2`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}

// GetTimezone returns the office timezone override, empty when unset
func (r *officeRepository) GetTimezone(ctx context.Context, id string, tenantID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(timezone, '') FROM offices WHERE id = $1 AND tenant_id = $2`

	var tz string
	err := q.QueryRow(ctx, query, id, tenantID).Scan(&tz)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", office.ErrOfficeNotFound
		}
		return "", fmt.Errorf("failed to get office timezone: %w", err)
	}

	return tz, nil
}
