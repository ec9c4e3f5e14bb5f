package cache_test

import (
	"context"
	"testing"
	"time"

	"go-shortlink/internal/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisCacheSuite runs the Redis cache against a real server.
type RedisCacheSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	client    *redis.Client
	cache     *cache.Redis
}

func (s *RedisCacheSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcredis.Run(s.ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.container = container

	endpoint, err := container.Endpoint(s.ctx, "")
	require.NoError(s.T(), err)

	s.client, err = cache.NewRedisClient(s.ctx, cache.RedisOptions{Addr: endpoint})
	require.NoError(s.T(), err)
	s.cache = cache.NewRedis(s.client)
}

func (s *RedisCacheSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisCacheSuite) SetupTest() {
	require.NoError(s.T(), s.client.FlushDB(s.ctx).Err())
}

func (s *RedisCacheSuite) TestSetThenGet() {
	require.NoError(s.T(), s.cache.Set(s.ctx, "abc123", "https://example.com", time.Hour))

	value, ok, err := s.cache.Get(s.ctx, "abc123")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("https://example.com", value)

	ttl, err := s.client.TTL(s.ctx, "link:abc123").Result()
	s.Require().NoError(err)
	s.Greater(ttl, 59*time.Minute)
}

func (s *RedisCacheSuite) TestGetMissing_Misses() {
	value, ok, err := s.cache.Get(s.ctx, "nope00")
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(value)
}

func (s *RedisCacheSuite) TestExpiry() {
	require.NoError(s.T(), s.cache.Set(s.ctx, "short1", "https://example.com", time.Second))

	assert.Eventually(s.T(), func() bool {
		_, ok, err := s.cache.Get(s.ctx, "short1")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *RedisCacheSuite) TestDelete() {
	require.NoError(s.T(), s.cache.Set(s.ctx, "abc123", "https://example.com", time.Hour))
	require.NoError(s.T(), s.cache.Delete(s.ctx, "abc123"))

	_, ok, err := s.cache.Get(s.ctx, "abc123")
	s.Require().NoError(err)
	s.False(ok)
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}
