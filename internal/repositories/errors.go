package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/career-toolkit/internal/logger"
)

// Store errors. Callers translate them into their own taxonomy.
var (
	ErrUniqueViolation = errors.New("unique constraint violation")
	ErrNotFound        = errors.New("record not found")
)

// mapError converts a Postgres unique violation into ErrUniqueViolation and
// passes every other error through.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrUniqueViolation
	}
	return err
}

// logQuery logs a query on one line. Secrets must not be passed in args.
func logQuery(query string, args []any, err error) {
	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
