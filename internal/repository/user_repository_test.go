package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekeeper/server/internal/models"
	"github.com/filekeeper/server/internal/repository"
)

// newMockDB создает мок базы данных для тестов репозиториев.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestPostgresUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO users (username, password_hash, totp_secret) VALUES ($1, $2, $3) RETURNING id`)

	user := &models.User{
		Username:     "alice",
		PasswordHash: "0a1b2c3d",
		TOTPSecret:   "JBSWY3DPEHPK3PXP",
	}

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewPostgresUserRepository(db)

		mock.ExpectQuery(query).
			WithArgs(user.Username, user.PasswordHash, user.TOTPSecret).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		userID, err := repo.CreateUser(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(1), userID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Имя пользователя уже занято", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewPostgresUserRepository(db)

		mock.ExpectQuery(query).
			WithArgs(user.Username, user.PasswordHash, user.TOTPSecret).
			WillReturnError(&pq.Error{Code: "23505"})

		userID, err := repo.CreateUser(ctx, user)
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
		assert.Zero(t, userID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Непредвиденная ошибка БД", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewPostgresUserRepository(db)

		dbErr := errors.New("соединение разорвано")
		mock.ExpectQuery(query).
			WithArgs(user.Username, user.PasswordHash, user.TOTPSecret).
			WillReturnError(dbErr)

		userID, err := repo.CreateUser(ctx, user)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, repository.ErrUsernameTaken)
		assert.Zero(t, userID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserRepository_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, username, password_hash, totp_secret, created_at FROM users WHERE username=$1`)

	t.Run("Пользователь найден", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewPostgresUserRepository(db)

		createdAt := time.Now()
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "totp_secret", "created_at"}).
			AddRow(int64(1), "alice", "0a1b2c3d", "JBSWY3DPEHPK3PXP", createdAt)
		mock.ExpectQuery(query).WithArgs("alice").WillReturnRows(rows)

		user, err := repo.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "0a1b2c3d", user.PasswordHash)
		assert.Equal(t, "JBSWY3DPEHPK3PXP", user.TOTPSecret)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewPostgresUserRepository(db)

		mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewPostgresUserRepository(db)

		dbErr := errors.New("соединение разорвано")
		mock.ExpectQuery(query).WithArgs("alice").WillReturnError(dbErr)

		user, err := repo.GetUserByUsername(ctx, "alice")
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
