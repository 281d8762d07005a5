package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountRowColumns = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

func TestAccountReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db, nil)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE LOWER(email) = LOWER($1)")).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(1, "alice123", "A@X.com", "hash", now, now))

	account, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, "alice123", account.Username)
	assert.Equal(t, "A@X.com", account.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_GetByUsernameOrEmail_CaseInsensitiveEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db, nil)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1 OR LOWER(email) = LOWER($2)")).
		WithArgs("bob_1", "a@x.com").
		WillReturnRows(sqlmock.NewRows(accountRowColumns).AddRow(1, "alice123", "A@X.com", "hash", now, now))

	account, err := repo.GetByUsernameOrEmail(context.Background(), "bob_1", "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, int64(1), account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_NotFoundIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM accounts WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(accountRowColumns))

	account, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountReadRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db, nil)

	mock.ExpectQuery("FROM accounts").WillReturnError(errors.New("connection reset"))

	account, err := repo.GetByUsernameOrEmail(context.Background(), "alice123", "a@x.com")
	require.Error(t, err)
	assert.Nil(t, account)
}

func TestAccountWriteRepository_Insert_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountWriteRepository(db, nil)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("alice123", "a@x.com", "hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "accounts_email_key"})

	account, err := repo.Insert(context.Background(), "alice123", "a@x.com", "hash")
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.Nil(t, account)
}

func TestAccountWriteRepository_UpdatePasswordHash(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE accounts SET password_hash").
			WithArgs(int64(7), "newhash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewAccountWriteRepository(db, nil).UpdatePasswordHash(context.Background(), 7, "newhash")
		assert.NoError(t, err)
	})

	t.Run("missing account", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE accounts SET password_hash").
			WithArgs(int64(7), "newhash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewAccountWriteRepository(db, nil).UpdatePasswordHash(context.Background(), 7, "newhash")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMapError(t *testing.T) {
	other := errors.New("other")
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}), ErrUniqueViolation)
	assert.Equal(t, other, mapError(other))
	assert.Nil(t, mapError(nil))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	assert.Equal(t, error(fk), mapError(fk))
}
