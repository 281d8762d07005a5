package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/models"
)

// ProfileCacheRepository caches profiles in Redis keyed by account id.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached profiles
}

// NewProfileCacheRepository creates a new repository instance with the given TTL
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(accountID int64) string {
	return fmt.Sprintf("profile:%d", accountID)
}

// Get returns the cached profile of accountID, or nil on a cache miss.
func (r *ProfileCacheRepository) Get(ctx context.Context, accountID int64) (*models.Profile, error) {
	key := profileKey(accountID)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("profile cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Warnw("profile cache get failed", "key", key, "error", err)
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(val, &profile); err != nil {
		logger.Log.Warnw("profile cache entry corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("profile cache hit", "key", key)
	return &profile, nil
}

// Set stores profile with the repository TTL.
func (r *ProfileCacheRepository) Set(ctx context.Context, profile *models.Profile) error {
	key := profileKey(profile.AccountID)

	val, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, val, r.exp).Err()
	logger.Log.Debugw("profile cache set", "key", key, "error", err)
	return err
}

// Delete evicts the cached profile of accountID.
func (r *ProfileCacheRepository) Delete(ctx context.Context, accountID int64) error {
	key := profileKey(accountID)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("profile cache delete", "key", key, "error", err)
	return err
}
