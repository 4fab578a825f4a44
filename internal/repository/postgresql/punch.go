package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/punch"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

// NewPunchRepository creates a new punch repository
func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Create records a new punch event
func (r *punchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO punches (id, tenant_id, employee_id, type, occurred_at, source, replaces_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		p.ID,
		p.TenantID,
		p.EmployeeID,
		string(p.Type),
		p.OccurredAt,
		string(p.Source),
		p.ReplacesID,
		p.CreatedAt,
	)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// GetByID retrieves a punch by ID
func (r *punchRepository) GetByID(ctx context.Context, id string, tenantID string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.tenant_id, p.employee_id, p.type, p.occurred_at, p.source,
		       p.replaces_id, p.voided_at, p.voided_by, p.created_at, e.name AS employee_name
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.tenant_id = $2
	`

	var p punch.Punch
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&p.ID,
		&p.TenantID,
		&p.EmployeeID,
		&p.Type,
		&p.OccurredAt,
		&p.Source,
		&p.ReplacesID,
		&p.VoidedAt,
		&p.VoidedBy,
		&p.CreatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return p, nil
}

// List retrieves punches matching the filter with total count
func (r *punchRepository) List(ctx context.Context, filter punch.PunchFilter, tenantID string) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.tenant_id = $1"}
	args := []interface{}{tenantID}
	argIdx := 2

	if !filter.Voided {
		conditions = append(conditions, "p.voided_at IS NULL")
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Type != nil && *filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("p.type = $%d", argIdx))
		args = append(args, strings.ToUpper(*filter.Type))
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("p.occurred_at >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("p.occurred_at < $%d::date + interval '1 day'", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM punches p WHERE %s`, whereClause)

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT p.id, p.tenant_id, p.employee_id, p.type, p.occurred_at, p.source,
		       p.replaces_id, p.voided_at, p.voided_by, p.created_at, e.name AS employee_name
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.occurred_at DESC, p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.EmployeeID,
			&p.Type,
			&p.OccurredAt,
			&p.Source,
			&p.ReplacesID,
			&p.VoidedAt,
			&p.VoidedBy,
			&p.CreatedAt,
			&p.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, totalCount, nil
}

// ListForRange returns unvoided punches for one employee in ascending
// order. Creation order breaks occurred_at ties so a corrected punch
// lands after the one it replaced.
func (r *punchRepository) ListForRange(ctx context.Context, employeeID string, from, to time.Time, tenantID string) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, employee_id, type, occurred_at, source, replaces_id,
		       voided_at, voided_by, created_at
		FROM punches
		WHERE tenant_id = $1 AND employee_id = $2
		  AND voided_at IS NULL
		  AND occurred_at >= $3 AND occurred_at <= $4
		ORDER BY occurred_at ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, tenantID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for range: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.EmployeeID,
			&p.Type,
			&p.OccurredAt,
			&p.Source,
			&p.ReplacesID,
			&p.VoidedAt,
			&p.VoidedBy,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

// GetLast returns the employee's most recent unvoided punch, nil when
// the employee has never punched
func (r *punchRepository) GetLast(ctx context.Context, employeeID string, tenantID string) (*punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, employee_id, type, occurred_at, source, replaces_id,
		       voided_at, voided_by, created_at
		FROM punches
		WHERE tenant_id = $1 AND employee_id = $2 AND voided_at IS NULL
		ORDER BY occurred_at DESC, created_at DESC
		LIMIT 1
	`

	var p punch.Punch
	err := q.QueryRow(ctx, query, tenantID, employeeID).Scan(
		&p.ID,
		&p.TenantID,
		&p.EmployeeID,
		&p.Type,
		&p.OccurredAt,
		&p.Source,
		&p.ReplacesID,
		&p.VoidedAt,
		&p.VoidedBy,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last punch: %w", err)
	}

	return &p, nil
}

// Void marks a punch as superseded
func (r *punchRepository) Void(ctx context.Context, id string, tenantID string, voidedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET voided_at = $1, voided_by = $2
		WHERE id = $3 AND tenant_id = $4 AND voided_at IS NULL
	`

	tag, err := q.Exec(ctx, query, time.Now().UTC(), voidedBy, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to void punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}
