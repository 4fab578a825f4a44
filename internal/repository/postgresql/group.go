package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clockin-app/clockin-backend-go/internal/domain/master/group"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/database"
)

type groupRepository struct {
	db *database.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *database.DB) group.GroupRepository {
	return &groupRepository{db: db}
}

// Create creates a new group
func (r *groupRepository) Create(ctx context.Context, g group.Group) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	query := `
		INSERT INTO groups (id, tenant_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, g.ID, g.TenantID, g.Name, g.Description, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return group.Group{}, group.ErrGroupNameExists
		}
		return group.Group{}, fmt.Errorf("failed to create group: %w", err)
	}

	return g, nil
}

// GetByID retrieves a group by ID with its member count
func (r *groupRepository) GetByID(ctx context.Context, id string, tenantID string) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.tenant_id, g.name, g.description, g.created_at, g.updated_at,
		       COUNT(e.id) AS member_count
		FROM groups g
		LEFT JOIN employees e ON e.group_id = g.id AND e.active = true
		WHERE g.id = $1 AND g.tenant_id = $2
		GROUP BY g.id
	`

	var g group.Group
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&g.ID,
		&g.TenantID,
		&g.Name,
		&g.Description,
		&g.CreatedAt,
		&g.UpdatedAt,
		&g.MemberCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// GetByTenantID retrieves all groups for a tenant with member counts
func (r *groupRepository) GetByTenantID(ctx context.Context, tenantID string) ([]group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.tenant_id, g.name, g.description, g.created_at, g.updated_at,
		       COUNT(e.id) AS member_count
		FROM groups g
		LEFT JOIN employees e ON e.group_id = g.id AND e.active = true
		WHERE g.tenant_id = $1
		GROUP BY g.id
		ORDER BY g.name ASC
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []group.Group
	for rows.Next() {
		var g group.Group
		err := rows.Scan(&g.ID, &g.TenantID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt, &g.MemberCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// Update updates a group with partial fields
func (r *groupRepository) Update(ctx context.Context, req group.UpdateGroupRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now().UTC())
	argIdx++

	query := fmt.Sprintf(`UPDATE groups SET %s WHERE id = $%d AND tenant_id = $%d`,
		strings.Join(setClauses, ", "), argIdx, argIdx+1)
	args = append(args, req.ID, req.TenantID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return group.ErrGroupNameExists
		}
		return fmt.Errorf("failed to update group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}

// Delete removes a group. Employees keep their group_id as NULL via the
// FK's ON DELETE SET NULL.
func (r *groupRepository) Delete(ctx context.Context, id string, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM groups WHERE id = $1 AND tenant_id = $2`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}
