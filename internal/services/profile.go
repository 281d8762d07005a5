package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/repositories"
)

// ProfileStore reads and updates stored profiles.
type ProfileStore interface {
	GetByAccountID(ctx context.Context, accountID int64) (*models.Profile, error)
	Update(ctx context.Context, accountID int64, upd models.ProfileUpdate) (*models.Profile, error)
}

// ProfileCache is an optional read-through cache in front of ProfileStore.
// Writes invalidate the cached entry and the next Get refills it.
type ProfileCache interface {
	Get(ctx context.Context, accountID int64) (*models.Profile, error)
	Set(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, accountID int64) error
}

// ProfileService reads and edits the profile of the calling account.
type ProfileService struct {
	store  ProfileStore
	cache  ProfileCache
	events EventPublisher
}

// NewProfileService creates a ProfileService. cache may be nil.
func NewProfileService(store ProfileStore, cache ProfileCache, events EventPublisher) *ProfileService {
	return &ProfileService{store: store, cache: cache, events: events}
}

// Get returns the profile owned by accountID.
func (svc *ProfileService) Get(ctx context.Context, accountID int64) (*models.Profile, error) {
	if svc.cache != nil {
		profile, err := svc.cache.Get(ctx, accountID)
		if err != nil {
			logger.Log.Warnw("profile cache unavailable", "account_id", accountID, "error", err)
		}
		if profile != nil {
			return profile, nil
		}
	}

	profile, err := svc.store.GetByAccountID(ctx, accountID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get profile", "account_id", accountID, "error", err)
		return nil, err
	}

	svc.cacheProfile(ctx, profile)
	return profile, nil
}

// Update applies upd to the profile of account. Fields that are not set stay
// unchanged. An empty update returns the current profile without writing.
func (svc *ProfileService) Update(ctx context.Context, account *models.Account, upd models.ProfileUpdate) (*models.Profile, error) {
	if upd.Empty() {
		return svc.Get(ctx, account.ID)
	}

	profile, err := svc.store.Update(ctx, account.ID, upd)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update profile", "account_id", account.ID, "error", err)
		return nil, err
	}

	svc.evictProfile(ctx, account.ID)

	if err := svc.events.Publish(ctx, models.EventProfileUpdated, account); err != nil {
		logger.Log.Warnw("event not published", "type", models.EventProfileUpdated, "account_id", account.ID, "error", err)
	}

	logger.Log.Infow("profile updated", "account_id", account.ID)
	return profile, nil
}

func (svc *ProfileService) cacheProfile(ctx context.Context, profile *models.Profile) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Set(ctx, profile); err != nil {
		logger.Log.Warnw("failed to cache profile", "account_id", profile.AccountID, "error", err)
	}
}

func (svc *ProfileService) evictProfile(ctx context.Context, accountID int64) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, accountID); err != nil {
		logger.Log.Warnw("failed to evict cached profile", "account_id", accountID, "error", err)
	}
}
