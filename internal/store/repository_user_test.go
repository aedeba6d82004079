package store

import (
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_Success(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewUserRepository(ex)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (id,email,password_hash,is_superuser,created_at) VALUES ($1,$2,$3,$4,$5)",
	)).
		WithArgs(sqlmock.AnyArg(), "jane@example.com", "hash", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(testContext(), models.User{
		Email:        "jane@example.com",
		Password:     "secret",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Empty(t, created.Password)
	assert.False(t, created.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_KeepsProvidedID(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewUserRepository(ex)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(testOwner.String(), "root@example.com", "hash", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(testContext(), models.User{
		ID:           testOwner,
		Email:        "root@example.com",
		PasswordHash: "hash",
		Superuser:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, testOwner, created.ID)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewUserRepository(ex)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), models.User{Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	ex, mock := newTestExecutor(t)
	repo := NewUserRepository(ex)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), models.User{Email: "jane@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUserByEmail(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(
					"SELECT id, email, password_hash, is_superuser, created_at FROM users WHERE email = $1",
				)).
					WithArgs("jane@example.com").
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow(testOwner.String(), "jane@example.com", "hash", true, testNow))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users").
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, mock := newTestExecutor(t)
			repo := NewUserRepository(ex)
			tt.setup(mock)

			user, err := repo.FindUserByEmail(testContext(), "jane@example.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testOwner, user.ID)
			assert.Equal(t, "hash", user.PasswordHash)
			assert.True(t, user.Superuser)
		})
	}
}
