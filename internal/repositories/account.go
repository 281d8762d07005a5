package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/career-toolkit/internal/models"
)

const accountColumns = `id, COALESCE(username, '') AS username, email, password_hash, created_at, updated_at`

// AccountReadRepository looks accounts up by their unique keys.
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the account with email, compared case-insensitively, or
// nil if there is none.
func (r *AccountReadRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = LOWER($1)`
	return r.getOne(ctx, query, email)
}

// GetByUsername returns the account with username, or nil if there is none.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// GetByUsernameOrEmail returns any account holding username or email, or nil.
func (r *AccountReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.Account, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE username = $1 OR LOWER(email) = LOWER($2)
		ORDER BY id
		LIMIT 1
	`
	return r.getOne(ctx, query, username, email)
}

// ListWithoutUsername returns legacy accounts that have no username yet.
func (r *AccountReadRepository) ListWithoutUsername(ctx context.Context) ([]models.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE username IS NULL ORDER BY id`

	var accounts []models.Account
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &accounts, query)
	logQuery(query, nil, err)
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// UsernameTaken reports whether any account holds username.
func (r *AccountReadRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`

	var taken bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &taken, query, username)
	logQuery(query, []any{username}, err)
	return taken, err
}

func (r *AccountReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.Account, error) {
	var account models.Account
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, args...)
	logQuery(query, args, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountWriteRepository creates and mutates accounts.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a new account and returns it with the generated id and
// timestamps. A taken username or email yields ErrUniqueViolation.
func (r *AccountWriteRepository) Insert(ctx context.Context, username, email, passwordHash string) (*models.Account, error) {
	const query = `
		INSERT INTO accounts (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + accountColumns

	var account models.Account
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, username, email, passwordHash)
	logQuery(query, []any{username, email}, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &account, nil
}

// UpdatePasswordHash replaces the stored hash of account id.
func (r *AccountWriteRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	return r.execOne(ctx, query, []any{id}, id, passwordHash)
}

// SetUsername assigns username to account id.
func (r *AccountWriteRepository) SetUsername(ctx context.Context, id int64, username string) error {
	const query = `UPDATE accounts SET username = $2, updated_at = NOW() WHERE id = $1`
	return r.execOne(ctx, query, []any{id, username}, id, username)
}

func (r *AccountWriteRepository) execOne(ctx context.Context, query string, logArgs []any, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, logArgs, err)
	if err != nil {
		return mapError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
