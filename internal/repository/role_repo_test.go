package repository

import (
	"context"
	"testing"

	"timeshare_manager/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepository_RoleExists(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRoleRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ADMIN").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.RoleExists(context.Background(), model.RoleAdmin)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRoleRepository(mock)

	mock.ExpectExec("INSERT INTO roles").
		WithArgs("STAFF").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), model.RoleStaff)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRoleRepository(mock)

	mock.ExpectExec("INSERT INTO roles").
		WithArgs("STAFF").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), model.RoleStaff)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_AddToUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRoleRepository(mock)

	mock.ExpectQuery("SELECT id FROM roles WHERE name").
		WithArgs("ADMIN").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectExec("INSERT INTO user_roles").
		WithArgs("user-1", 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.AddToUser(context.Background(), "user-1", model.RoleAdmin)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_AddToUser_RoleNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRoleRepository(mock)

	mock.ExpectQuery("SELECT id FROM roles WHERE name").
		WithArgs("ADMIN").
		WillReturnError(pgx.ErrNoRows)

	err := repo.AddToUser(context.Background(), "user-1", model.RoleAdmin)
	assert.ErrorIs(t, err, ErrRoleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_RolesForUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRoleRepository(mock)

	mock.ExpectQuery("SELECT r.name FROM roles r").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"name"}).AddRow("USER").AddRow("ADMIN"))

	roles, err := repo.RolesForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []model.Role{model.RoleUser, model.RoleAdmin}, roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}
