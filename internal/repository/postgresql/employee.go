package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/employee"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	query := `
		INSERT INTO employees (id, tenant_id, name, email, pin_hash, hourly_rate,
		                       office_id, group_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		emp.ID,
		emp.TenantID,
		emp.Name,
		emp.Email,
		emp.PINHash,
		emp.HourlyRate,
		emp.OfficeID,
		emp.GroupID,
		emp.Active,
		emp.CreatedAt,
		emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID retrieves an employee by ID with office and group names joined
func (r *employeeRepository) GetByID(ctx context.Context, id string, tenantID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.tenant_id, e.name, e.email, e.pin_hash, e.hourly_rate,
		       e.office_id, e.group_id, e.active, e.created_at, e.updated_at,
		       o.name AS office_name, g.name AS group_name
		FROM employees e
		LEFT JOIN offices o ON o.id = e.office_id
		LEFT JOIN groups g ON g.id = e.group_id
		WHERE e.id = $1 AND e.tenant_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&emp.ID,
		&emp.TenantID,
		&emp.Name,
		&emp.Email,
		&emp.PINHash,
		&emp.HourlyRate,
		&emp.OfficeID,
		&emp.GroupID,
		&emp.Active,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.OfficeName,
		&emp.GroupName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List retrieves employees matching the filter with total count
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter, tenantID string) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.tenant_id = $1"}
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("e.name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	if filter.OfficeID != nil && *filter.OfficeID != "" {
		conditions = append(conditions, fmt.Sprintf("e.office_id = $%d", argIdx))
		args = append(args, *filter.OfficeID)
		argIdx++
	}

	if filter.GroupID != nil && *filter.GroupID != "" {
		conditions = append(conditions, fmt.Sprintf("e.group_id = $%d", argIdx))
		args = append(args, *filter.GroupID)
		argIdx++
	}

	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("e.active = $%d", argIdx))
		args = append(args, *filter.Active)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees e WHERE %s`, whereClause)

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	// Sort column is validated upstream; never interpolate raw input here
	sortColumn := map[string]string{
		"name":        "e.name",
		"created_at":  "e.created_at",
		"hourly_rate": "e.hourly_rate",
	}[filter.SortBy]
	if sortColumn == "" {
		sortColumn = "e.name"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT e.id, e.tenant_id, e.name, e.email, e.pin_hash, e.hourly_rate,
		       e.office_id, e.group_id, e.active, e.created_at, e.updated_at,
		       o.name AS office_name, g.name AS group_name
		FROM employees e
		LEFT JOIN offices o ON o.id = e.office_id
		LEFT JOIN groups g ON g.id = e.group_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.TenantID,
			&emp.Name,
			&emp.Email,
			&emp.PINHash,
			&emp.HourlyRate,
			&emp.OfficeID,
			&emp.GroupID,
			&emp.Active,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.OfficeName,
			&emp.GroupName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, totalCount, nil
}

// Update updates an employee
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, pin_hash = $3, hourly_rate = $4,
		    office_id = $5, group_id = $6, active = $7, updated_at = $8
		WHERE id = $9 AND tenant_id = $10
	`

	tag, err := q.Exec(ctx, query,
		emp.Name,
		emp.Email,
		emp.PINHash,
		emp.HourlyRate,
		emp.OfficeID,
		emp.GroupID,
		emp.Active,
		time.Now().UTC(),
		emp.ID,
		emp.TenantID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete deactivates an employee. Rows are never physically removed so
// historical punches keep resolving to a name.
func (r *employeeRepository) Delete(ctx context.Context, id string, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET active = false, updated_at = $1 WHERE id = $2 AND tenant_id = $3`

	tag, err := q.Exec(ctx, query, time.Now().UTC(), id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListActive returns active employees for report runs
func (r *employeeRepository) ListActive(ctx context.Context, tenantID string, officeID, groupID, employeeID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.tenant_id = $1", "e.active = true"}
	args := []interface{}{tenantID}
	argIdx := 2

	if employeeID != nil && *employeeID != "" {
		conditions = append(conditions, fmt.Sprintf("e.id = $%d", argIdx))
		args = append(args, *employeeID)
		argIdx++
	}

	if officeID != nil && *officeID != "" {
		conditions = append(conditions, fmt.Sprintf("e.office_id = $%d", argIdx))
		args = append(args, *officeID)
		argIdx++
	}

	if groupID != nil && *groupID != "" {
		conditions = append(conditions, fmt.Sprintf("e.group_id = $%d", argIdx))
		args = append(args, *groupID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.tenant_id, e.name, e.email, e.pin_hash, e.hourly_rate,
		       e.office_id, e.group_id, e.active, e.created_at, e.updated_at
		FROM employees e
		WHERE %s
		ORDER BY e.name ASC
	`, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.TenantID,
			&emp.Name,
			&emp.Email,
			&emp.PINHash,
			&emp.HourlyRate,
			&emp.OfficeID,
			&emp.GroupID,
			&emp.Active,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// ListActivePINs returns PIN hashes for kiosk matching
func (r *employeeRepository) ListActivePINs(ctx context.Context, tenantID string) ([]employee.PINRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, pin_hash
		FROM employees
		WHERE tenant_id = $1 AND active = true
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active pins: %w", err)
	}
	defer rows.Close()

	var records []employee.PINRecord
	for rows.Next() {
		var rec employee.PINRecord
		if err := rows.Scan(&rec.EmployeeID, &rec.Name, &rec.PINHash); err != nil {
			return nil, fmt.Errorf("failed to scan pin record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pin records: %w", err)
	}

	return records, nil
}
