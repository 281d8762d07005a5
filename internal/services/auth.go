package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/metrics"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/repositories"
	"github.com/sbilibin2017/career-toolkit/internal/validation"
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.Account, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Insert(ctx context.Context, username, email, passwordHash string) (*models.Account, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

// ProfileCreator creates the empty profile of a new account.
type ProfileCreator interface {
	Create(ctx context.Context, accountID int64) (*models.Profile, error)
}

// Transactor runs fn atomically.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenManager issues session tokens and resolves them back to their subject.
type TokenManager interface {
	Generate(ctx context.Context, subject string) (string, error)
	GetSubject(ctx context.Context, token string) (string, error)
}

// EventPublisher publishes account events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, account *models.Account) error
}

// AuthResult is a freshly issued token with the account it belongs to.
type AuthResult struct {
	Token   string
	Account *models.Account
}

// dummyPassword is hashed once and compared against when a login names no
// known account.
const dummyPassword = "dummy-password-for-timing"

// AuthService handles registration, login, identity resolution and password
// changes.
type AuthService struct {
	reader   AccountReader
	writer   AccountWriter
	profiles ProfileCreator
	tx       Transactor
	hasher   PasswordHasher
	tokens   TokenManager
	events   EventPublisher

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader AccountReader,
	writer AccountWriter,
	profiles ProfileCreator,
	tx Transactor,
	hasher PasswordHasher,
	tokens TokenManager,
	events EventPublisher,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		profiles: profiles,
		tx:       tx,
		hasher:   hasher,
		tokens:   tokens,
		events:   events,
	}
}

// Register creates an account with an empty profile and returns a token for it.
// Policy violations are returned as *validation.Error.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	username, err := validation.ValidateUsername(username)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultRejected)
		return nil, err
	}
	email, err = validation.ValidateEmail(email)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultRejected)
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultRejected)
		return nil, err
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "error", err)
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultError)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("account already exists", "username", username, "email", email)
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultRejected)
		return nil, ErrDuplicateAccount
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultError)
		return nil, err
	}

	var account *models.Account
	err = svc.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		account, err = svc.writer.Insert(ctx, username, email, hash)
		if err != nil {
			return err
		}
		_, err = svc.profiles.Create(ctx, account.ID)
		return err
	})
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Infow("account registration lost uniqueness race", "username", username, "email", email)
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultRejected)
		return nil, ErrDuplicateAccount
	}
	if err != nil {
		logger.Log.Errorw("failed to save account", "error", err)
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultError)
		return nil, err
	}

	result, err := svc.issue(ctx, account)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultError)
		return nil, err
	}

	metrics.RecordAuthAttempt(metrics.OperationRegister, metrics.ResultSuccess)
	logger.Log.Infow("account registered", "account_id", account.ID, "username", account.Username)
	svc.publish(ctx, models.EventAccountRegistered, account)

	return result, nil
}

// Login authenticates by username or email and returns a new token. An unknown
// identifier and a wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	kind, key := validation.ClassifyLoginIdentifier(identifier)

	var (
		account *models.Account
		err     error
	)
	switch {
	case key == "" || password == "":
		// nothing to look up; rejected below like an unknown identifier
	case kind == validation.IdentifierEmail:
		account, err = svc.reader.GetByEmail(ctx, key)
	default:
		account, err = svc.reader.GetByUsername(ctx, key)
	}
	if err != nil {
		logger.Log.Errorw("failed to get account", "error", err)
		metrics.RecordAuthAttempt(metrics.OperationLogin, metrics.ResultError)
		return nil, err
	}

	if account == nil {
		// keep the unknown-identifier path as slow as a real comparison
		_, _ = svc.hasher.Verify(password, svc.getDummyHash())
		logger.Log.Infow("login rejected", "reason", "unknown identifier")
		metrics.RecordAuthAttempt(metrics.OperationLogin, metrics.ResultRejected)
		return nil, ErrInvalidCredentials
	}

	ok, err := svc.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		logger.Log.Errorw("failed to verify password", "account_id", account.ID, "error", err)
		metrics.RecordAuthAttempt(metrics.OperationLogin, metrics.ResultError)
		return nil, err
	}
	if !ok {
		logger.Log.Infow("login rejected", "reason", "wrong password", "account_id", account.ID)
		metrics.RecordAuthAttempt(metrics.OperationLogin, metrics.ResultRejected)
		return nil, ErrInvalidCredentials
	}

	result, err := svc.issue(ctx, account)
	if err != nil {
		metrics.RecordAuthAttempt(metrics.OperationLogin, metrics.ResultError)
		return nil, err
	}

	metrics.RecordAuthAttempt(metrics.OperationLogin, metrics.ResultSuccess)
	svc.publish(ctx, models.EventAccountLoggedIn, account)

	return result, nil
}

// CurrentAccount resolves token to the account it was issued for. Token
// failures are returned unchanged from the TokenManager.
func (svc *AuthService) CurrentAccount(ctx context.Context, token string) (*models.Account, error) {
	email, err := svc.tokens.GetSubject(ctx, token)
	if err != nil {
		return nil, err
	}

	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "error", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ChangePassword replaces the password of account after checking the current one.
func (svc *AuthService) ChangePassword(ctx context.Context, account *models.Account, currentPassword, newPassword string) error {
	ok, err := svc.hasher.Verify(currentPassword, account.PasswordHash)
	if err != nil {
		logger.Log.Errorw("failed to verify password", "account_id", account.ID, "error", err)
		metrics.RecordAuthAttempt(metrics.OperationChangePassword, metrics.ResultError)
		return err
	}
	if !ok {
		metrics.RecordAuthAttempt(metrics.OperationChangePassword, metrics.ResultRejected)
		return ErrInvalidCredentials
	}

	if err := validation.ValidatePassword(newPassword); err != nil {
		metrics.RecordAuthAttempt(metrics.OperationChangePassword, metrics.ResultRejected)
		return err
	}

	hash, err := svc.hasher.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		metrics.RecordAuthAttempt(metrics.OperationChangePassword, metrics.ResultError)
		return err
	}

	err = svc.writer.UpdatePasswordHash(ctx, account.ID, hash)
	if errors.Is(err, repositories.ErrNotFound) {
		metrics.RecordAuthAttempt(metrics.OperationChangePassword, metrics.ResultRejected)
		return ErrAccountNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update password", "account_id", account.ID, "error", err)
		metrics.RecordAuthAttempt(metrics.OperationChangePassword, metrics.ResultError)
		return err
	}

	metrics.RecordAuthAttempt(metrics.OperationChangePassword, metrics.ResultSuccess)
	logger.Log.Infow("password changed", "account_id", account.ID)
	svc.publish(ctx, models.EventAccountPasswordChanged, account)

	return nil
}

func (svc *AuthService) issue(ctx context.Context, account *models.Account) (*AuthResult, error) {
	token, err := svc.tokens.Generate(ctx, account.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return nil, fmt.Errorf("issue token: %w", err)
	}
	metrics.RecordTokenIssued()
	return &AuthResult{Token: token, Account: account}, nil
}

func (svc *AuthService) getDummyHash() string {
	svc.dummyOnce.Do(func() {
		hash, err := svc.hasher.Hash(dummyPassword)
		if err != nil {
			logger.Log.Errorw("failed to prepare dummy hash", "error", err)
			return
		}
		svc.dummyHash = hash
	})
	return svc.dummyHash
}

// publish sends an event after the owning work has committed. Failures are
// logged only.
func (svc *AuthService) publish(ctx context.Context, eventType string, account *models.Account) {
	if err := svc.events.Publish(ctx, eventType, account); err != nil {
		logger.Log.Warnw("event not published", "type", eventType, "account_id", account.ID, "error", err)
	}
}
