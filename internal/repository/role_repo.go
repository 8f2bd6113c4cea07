package repository

import (
	"context"
	"errors"
	"fmt"

	"timeshare_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrRoleNotFound is returned when a role name has not been seeded yet
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines operations for role data and role memberships
type RoleRepository interface {
	RoleExists(ctx context.Context, name model.Role) (bool, error)
	Create(ctx context.Context, name model.Role) error
	AddToUser(ctx context.Context, userID string, name model.Role) error
	RolesForUser(ctx context.Context, userID string) ([]model.Role, error)
}

type roleRepository struct {
	db DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db DB) RoleRepository {
	return &roleRepository{db: db}
}

// RoleExists reports whether a role name has been created
func (r *roleRepository) RoleExists(ctx context.Context, name model.Role) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS(SELECT 1 FROM roles WHERE name = $1)`
	if err := r.db.QueryRow(ctx, sql, string(name)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new role. A concurrent duplicate insert surfaces as
// ErrDuplicate via the unique index on the role name.
func (r *roleRepository) Create(ctx context.Context, name model.Role) error {
	sql := `INSERT INTO roles (name) VALUES ($1)`
	if _, err := r.db.Exec(ctx, sql, string(name)); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

// AddToUser grants a role to a user. Granting an already-held role is a
// no-op; a role that was never seeded yields ErrRoleNotFound.
func (r *roleRepository) AddToUser(ctx context.Context, userID string, name model.Role) error {
	var roleID int
	if err := r.db.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, string(name)).Scan(&roleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoleNotFound
		}
		return fmt.Errorf("failed to look up role: %w", err)
	}

	sql := `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT (user_id, role_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, sql, userID, roleID); err != nil {
		return fmt.Errorf("failed to add role to user: %w", err)
	}
	return nil
}

// RolesForUser retrieves the role names currently assigned to a user
func (r *roleRepository) RolesForUser(ctx context.Context, userID string) ([]model.Role, error) {
	sql := `SELECT r.name FROM roles r
            JOIN user_roles ur ON ur.role_id = r.id
            WHERE ur.user_id = $1
            ORDER BY r.id`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user roles: %w", err)
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, model.Role(name))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}
	return roles, nil
}
