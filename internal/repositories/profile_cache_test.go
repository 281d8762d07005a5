package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestProfileCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewProfileCacheRepository(rdb, 2*time.Second)
	name := "Alice"

	t.Run("Set and Get profile", func(t *testing.T) {
		profile := &models.Profile{ID: 1, AccountID: 10, Name: &name}
		require.NoError(t, repo.Set(ctx, profile))

		got, err := repo.Get(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(10), got.AccountID)
		assert.Equal(t, "Alice", *got.Name)
		assert.Nil(t, got.Skills)
	})

	t.Run("Get missing key is a miss", func(t *testing.T) {
		got, err := repo.Get(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete evicts", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, &models.Profile{ID: 2, AccountID: 20}))
		require.NoError(t, repo.Delete(ctx, 20))

		got, err := repo.Get(ctx, 20)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, &models.Profile{ID: 3, AccountID: 30}))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, 30)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
