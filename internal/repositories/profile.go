package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/career-toolkit/internal/models"
)

const profileColumns = `id, account_id, name, career_goals, education, skills, created_at, updated_at`

// ProfileRepository stores the one-to-one profile of each account.
type ProfileRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileRepository {
	return &ProfileRepository{db: db, txGetter: txGetter}
}

// Create inserts an empty profile for accountID.
func (r *ProfileRepository) Create(ctx context.Context, accountID int64) (*models.Profile, error) {
	const query = `
		INSERT INTO profiles (account_id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING ` + profileColumns

	var profile models.Profile
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, accountID)
	logQuery(query, []any{accountID}, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &profile, nil
}

// GetByAccountID returns the profile of accountID or ErrNotFound.
func (r *ProfileRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1`

	var profile models.Profile
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, accountID)
	logQuery(query, []any{accountID}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the set fields of upd to the profile of accountID and returns
// the stored result, or ErrNotFound. A set field with a nil value is cleared.
func (r *ProfileRepository) Update(ctx context.Context, accountID int64, upd models.ProfileUpdate) (*models.Profile, error) {
	const query = `
		UPDATE profiles
		SET name = CASE WHEN $2 THEN $3 ELSE name END,
		    career_goals = CASE WHEN $4 THEN $5 ELSE career_goals END,
		    education = CASE WHEN $6 THEN $7 ELSE education END,
		    skills = CASE WHEN $8 THEN $9 ELSE skills END,
		    updated_at = NOW()
		WHERE account_id = $1
		RETURNING ` + profileColumns

	args := []any{
		accountID,
		upd.Name.Set, upd.Name.Value,
		upd.CareerGoals.Set, upd.CareerGoals.Value,
		upd.Education.Set, upd.Education.Value,
		upd.Skills.Set, upd.Skills.Value,
	}

	var profile models.Profile
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, args...)
	logQuery(query, []any{accountID}, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
