//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tripapp/internal/booking/cache"
	"tripapp/internal/booking/models"
	"tripapp/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.cache = cache.NewRedis(s.redis.Client, cache.WithTTL(time.Minute))
}

func page(n int) *models.PaginatedResult[models.TripSummary] {
	return &models.PaginatedResult[models.TripSummary]{
		PageNum:  n,
		PageSize: 10,
		AllPages: 3,
		Data: []models.TripSummary{{
			Name:      "Tuscan Hills",
			Countries: []models.CountrySummary{{Name: "Italy"}},
			Clients:   []models.ClientSummary{{FirstName: "Jan", LastName: "Nowak"}},
		}},
	}
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()
	_, gen, ok := s.cache.Get(ctx, "page=2:size=10")
	s.Require().False(ok)
	s.cache.Set(ctx, gen, "page=2:size=10", page(2))

	got, _, ok := s.cache.Get(ctx, "page=2:size=10")
	s.Require().True(ok)
	s.Equal(2, got.PageNum)
	s.Equal("Italy", got.Data[0].Countries[0].Name)
	s.Equal("Nowak", got.Data[0].Clients[0].LastName)
}

func (s *RedisCacheSuite) TestInvalidateHidesOlderGeneration() {
	ctx := context.Background()
	s.cache.Set(ctx, 0, "page=1:size=10", page(1))

	s.cache.Invalidate(ctx)

	_, gen, ok := s.cache.Get(ctx, "page=1:size=10")
	s.False(ok)
	s.Equal(int64(1), gen)

	s.cache.Set(ctx, gen, "page=1:size=10", page(1))
	_, _, ok = s.cache.Get(ctx, "page=1:size=10")
	s.True(ok)
}

func (s *RedisCacheSuite) TestPageLoadedBeforeInvalidateStaysHidden() {
	ctx := context.Background()
	_, gen, ok := s.cache.Get(ctx, "page=1:size=10")
	s.Require().False(ok)

	s.cache.Invalidate(ctx)
	s.cache.Set(ctx, gen, "page=1:size=10", page(1))

	_, _, ok = s.cache.Get(ctx, "page=1:size=10")
	s.False(ok)
}

func (s *RedisCacheSuite) TestEntriesCarryTTL() {
	ctx := context.Background()
	s.cache.Set(ctx, 0, "page=1:size=10", page(1))

	keys, err := s.redis.Client.Keys(ctx, "tripapp:trips:g0:*").Result()
	s.Require().NoError(err)
	s.Require().Len(keys, 1)
	ttl, err := s.redis.Client.TTL(ctx, keys[0]).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisCacheSuite) TestUnreachableRedisIsAMiss() {
	ctx := context.Background()
	broken := cache.NewRedis(s.redis.Client)
	closedCtx, cancel := context.WithCancel(ctx)
	cancel()

	_, gen, ok := broken.Get(closedCtx, "k")
	s.False(ok)
	s.Equal(int64(-1), gen)
	broken.Set(closedCtx, 0, "k", page(1))
	_, _, ok = broken.Get(closedCtx, "k")
	s.False(ok)
}
