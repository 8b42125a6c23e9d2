package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockUserRepository creates a GormUserRepository with a mocked SQL connection
func newMockUserRepository(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormUserRepository(gormDB), mock, mockDB
}

func TestGormUserRepository_FindByID(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "email", "display_name", "password_hash", "role", "is_active"}).
			AddRow(userID, "ana@example.com", "Ana", "$2a$12$hash", "editor", true)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnRows(rows)

		user, err := repo.FindByID(context.Background(), userID)

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing user", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), userID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	t.Run("normalizes email before lookup", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "email", "display_name", "password_hash", "role", "is_active"}).
			AddRow(userID, "ana@example.com", "Ana", "$2a$12$hash", "viewer", true)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ana@example.com", 1).
			WillReturnRows(rows)

		user, err := repo.FindByEmail(context.Background(), "  Ana@Example.COM ")

		assert.NoError(t, err)
		assert.Equal(t, "ana@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
