package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/career-toolkit/internal/models"
)

// MemoryStore is an in-process account directory for local development and
// tests. It enforces the same uniqueness rules as the Postgres schema and
// serializes transactions behind a single mutex.
type MemoryStore struct {
	mu            sync.Mutex
	nextAccountID int64
	nextProfileID int64
	accounts      map[int64]models.Account
	profiles      map[int64]models.Profile // keyed by account id
	now           func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[int64]models.Account),
		profiles: make(map[int64]models.Profile),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type memTxKey struct{}

// lock acquires the store mutex unless ctx already runs inside one of this
// store's transactions.
func (s *MemoryStore) lock(ctx context.Context) func() {
	if owner, _ := ctx.Value(memTxKey{}).(*MemoryStore); owner == s {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// WithTransaction runs fn while holding the store lock. Changes made by fn are
// discarded if it returns an error or panics.
func (s *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if owner, _ := ctx.Value(memTxKey{}).(*MemoryStore); owner == s {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	defer func() {
		if rec := recover(); rec != nil {
			s.restore(snapshot)
			panic(rec)
		}
		if err != nil {
			s.restore(snapshot)
		}
	}()

	return fn(context.WithValue(ctx, memTxKey{}, s))
}

type memSnapshot struct {
	nextAccountID int64
	nextProfileID int64
	accounts      map[int64]models.Account
	profiles      map[int64]models.Profile
}

func (s *MemoryStore) snapshot() memSnapshot {
	snap := memSnapshot{
		nextAccountID: s.nextAccountID,
		nextProfileID: s.nextProfileID,
		accounts:      make(map[int64]models.Account, len(s.accounts)),
		profiles:      make(map[int64]models.Profile, len(s.profiles)),
	}
	for k, v := range s.accounts {
		snap.accounts[k] = v
	}
	for k, v := range s.profiles {
		snap.profiles[k] = v
	}
	return snap
}

func (s *MemoryStore) restore(snap memSnapshot) {
	s.nextAccountID = snap.nextAccountID
	s.nextProfileID = snap.nextProfileID
	s.accounts = snap.accounts
	s.profiles = snap.profiles
}

// GetByEmail returns the account with email, or nil.
func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	defer s.lock(ctx)()
	return s.find(func(a models.Account) bool { return strings.EqualFold(a.Email, email) }), nil
}

// GetByUsername returns the account with username, or nil.
func (s *MemoryStore) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	defer s.lock(ctx)()
	if username == "" {
		return nil, nil
	}
	return s.find(func(a models.Account) bool { return a.Username == username }), nil
}

// GetByUsernameOrEmail returns any account holding username or email, or nil.
func (s *MemoryStore) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.Account, error) {
	defer s.lock(ctx)()
	return s.find(func(a models.Account) bool {
		return (username != "" && a.Username == username) || strings.EqualFold(a.Email, email)
	}), nil
}

// ListWithoutUsername returns accounts with no username, ordered by id.
func (s *MemoryStore) ListWithoutUsername(ctx context.Context) ([]models.Account, error) {
	defer s.lock(ctx)()
	var out []models.Account
	for _, a := range s.accounts {
		if a.Username == "" {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UsernameTaken reports whether any account holds username.
func (s *MemoryStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	defer s.lock(ctx)()
	return s.find(func(a models.Account) bool { return a.Username == username }) != nil, nil
}

// Insert stores a new account. Username (when set) and email must be unused.
func (s *MemoryStore) Insert(ctx context.Context, username, email, passwordHash string) (*models.Account, error) {
	defer s.lock(ctx)()

	if s.find(func(a models.Account) bool {
		return (username != "" && a.Username == username) || strings.EqualFold(a.Email, email)
	}) != nil {
		return nil, ErrUniqueViolation
	}

	s.nextAccountID++
	now := s.now()
	account := models.Account{
		ID:           s.nextAccountID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.accounts[account.ID] = account
	return &account, nil
}

// UpdatePasswordHash replaces the stored hash of account id.
func (s *MemoryStore) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	defer s.lock(ctx)()

	account, ok := s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	account.PasswordHash = passwordHash
	account.UpdatedAt = s.now()
	s.accounts[id] = account
	return nil
}

// SetUsername assigns username to account id.
func (s *MemoryStore) SetUsername(ctx context.Context, id int64, username string) error {
	defer s.lock(ctx)()

	account, ok := s.accounts[id]
	if !ok {
		return ErrNotFound
	}
	if other := s.find(func(a models.Account) bool { return a.Username == username }); other != nil && other.ID != id {
		return ErrUniqueViolation
	}
	account.Username = username
	account.UpdatedAt = s.now()
	s.accounts[id] = account
	return nil
}

// Create inserts an empty profile for accountID.
func (s *MemoryStore) Create(ctx context.Context, accountID int64) (*models.Profile, error) {
	defer s.lock(ctx)()

	if _, ok := s.accounts[accountID]; !ok {
		return nil, ErrNotFound
	}
	if _, ok := s.profiles[accountID]; ok {
		return nil, ErrUniqueViolation
	}

	s.nextProfileID++
	now := s.now()
	profile := models.Profile{
		ID:        s.nextProfileID,
		AccountID: accountID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.profiles[accountID] = profile
	return &profile, nil
}

// GetByAccountID returns the profile of accountID or ErrNotFound.
func (s *MemoryStore) GetByAccountID(ctx context.Context, accountID int64) (*models.Profile, error) {
	defer s.lock(ctx)()

	profile, ok := s.profiles[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

// Update applies upd to the profile of accountID.
func (s *MemoryStore) Update(ctx context.Context, accountID int64, upd models.ProfileUpdate) (*models.Profile, error) {
	defer s.lock(ctx)()

	profile, ok := s.profiles[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	upd.Apply(&profile)
	profile.UpdatedAt = s.now()
	s.profiles[accountID] = profile
	return &profile, nil
}

// find must be called with the lock held.
func (s *MemoryStore) find(match func(models.Account) bool) *models.Account {
	for _, a := range s.accounts {
		if match(a) {
			found := a
			return &found
		}
	}
	return nil
}
