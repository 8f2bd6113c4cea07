package repository

import (
	"context"
	"testing"
	"time"

	"timeshare_manager/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func testUser() *model.User {
	now := time.Now()
	return &model.User{
		ID:            "6a1f6a0e-3f3c-4a1e-9a52-0f6f5f9a1b2c",
		Username:      "alice",
		Email:         "alice@example.com",
		FirstName:     "Alice",
		LastName:      "Smith",
		PasswordHash:  "$2a$10$hash",
		SecurityStamp: "stamp-1",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func userRows(user *model.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "username", "email", "first_name", "last_name",
		"password_hash", "security_stamp", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.PasswordHash, user.SecurityStamp, user.CreatedAt, user.UpdatedAt,
	)
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	user := testUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.FirstName, user.LastName,
			user.PasswordHash, user.SecurityStamp, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	user := testUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.FirstName, user.LastName,
			user.PasswordHash, user.SecurityStamp, user.CreatedAt, user.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	user := testUser()

	// The lookup normalizes case in SQL, so the mixed-case argument passes through
	mock.ExpectQuery("SELECT id, username, email, first_name, last_name, password_hash, security_stamp, created_at, updated_at FROM users WHERE LOWER").
		WithArgs("ALICE").
		WillReturnRows(userRows(user))

	found, err := repo.FindByUsername(context.Background(), "ALICE")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.Username, found.Username)
	assert.Equal(t, user.SecurityStamp, found.SecurityStamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT id, username, email, first_name, last_name, password_hash, security_stamp, created_at, updated_at FROM users WHERE LOWER").
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UsernameExists(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.UsernameExists(context.Background(), "alice")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("user-1", "$2a$10$newhash", "stamp-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdatePassword(context.Background(), "user-1", "$2a$10$newhash", "stamp-2")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("missing", "$2a$10$newhash", "stamp-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdatePassword(context.Background(), "missing", "$2a$10$newhash", "stamp-2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
