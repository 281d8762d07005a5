package services

//go:generate mockgen -source=backfill.go -destination=backfill_mock.go -package=services

import (
	"context"
	"strconv"
	"strings"

	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/validation"
)

// LegacyAccountReader finds accounts created before usernames existed.
type LegacyAccountReader interface {
	ListWithoutUsername(ctx context.Context) ([]models.Account, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// UsernameWriter assigns usernames.
type UsernameWriter interface {
	SetUsername(ctx context.Context, id int64, username string) error
}

// UsernameBackfiller gives every legacy account a username derived from its email.
type UsernameBackfiller struct {
	reader LegacyAccountReader
	writer UsernameWriter
	tx     Transactor
}

// NewUsernameBackfiller creates a UsernameBackfiller.
func NewUsernameBackfiller(reader LegacyAccountReader, writer UsernameWriter, tx Transactor) *UsernameBackfiller {
	return &UsernameBackfiller{reader: reader, writer: writer, tx: tx}
}

// Run assigns usernames to all accounts that lack one, in a single transaction,
// and returns how many accounts were updated.
func (b *UsernameBackfiller) Run(ctx context.Context) (int, error) {
	var updated int
	err := b.tx.WithTransaction(ctx, func(ctx context.Context) error {
		accounts, err := b.reader.ListWithoutUsername(ctx)
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			logger.Log.Infow("no accounts without username")
			return nil
		}

		logger.Log.Infow("backfilling usernames", "accounts", len(accounts))
		for _, account := range accounts {
			username, err := b.freeUsername(ctx, DeriveUsername(account.Email))
			if err != nil {
				return err
			}
			if err := b.writer.SetUsername(ctx, account.ID, username); err != nil {
				return err
			}
			logger.Log.Infow("username assigned", "account_id", account.ID, "username", username)
			updated++
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("username backfill failed", "error", err)
		return 0, err
	}
	return updated, nil
}

// freeUsername returns base, or base with the smallest numeric suffix that is
// not taken. The result never exceeds the username length limit.
func (b *UsernameBackfiller) freeUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		taken, err := b.reader.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		suffix := strconv.Itoa(n)
		prefix := base
		if len(prefix)+len(suffix) > validation.UsernameMaxLength {
			prefix = prefix[:validation.UsernameMaxLength-len(suffix)]
		}
		candidate = prefix + suffix
	}
}

// DeriveUsername builds a username candidate from the local part of email:
// characters outside [a-zA-Z0-9_] are dropped, short results are padded with
// "123" and long ones cut to the maximum length.
func DeriveUsername(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var sb strings.Builder
	for _, r := range local {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}

	username := sb.String()
	if len(username) < validation.UsernameMinLength {
		username += "123"
	}
	if len(username) > validation.UsernameMaxLength {
		username = username[:validation.UsernameMaxLength]
	}
	return username
}
