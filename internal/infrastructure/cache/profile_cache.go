package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/davidmtz/usuarios-api/internal/application"
	"github.com/davidmtz/usuarios-api/internal/domain/entity"
	"github.com/davidmtz/usuarios-api/pkg/helpers"
)

// RedisProfileCache keeps sanitized profiles in Redis under
// user:profile:<id>. Failures degrade to cache misses; they never break the
// request.
type RedisProfileCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewRedisProfileCache(rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisProfileCache {
	return &RedisProfileCache{rdb: rdb, ttl: ttl, logger: logger}
}

func profileKey(id string) string {
	return "user:profile:" + id
}

func (c *RedisProfileCache) Get(ctx context.Context, id string) (*entity.UserProfile, bool) {
	var p entity.UserProfile
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, profileKey(id), &p)
	if err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("user_id", id).Warn("profile cache read failed")
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *RedisProfileCache) Set(ctx context.Context, p *entity.UserProfile) {
	if err := helpers.RedisSetJSON(ctx, c.rdb, profileKey(p.ID), p, c.ttl); err != nil && c.logger != nil {
		c.logger.WithError(err).WithField("user_id", p.ID).Warn("profile cache write failed")
	}
}

func (c *RedisProfileCache) Del(ctx context.Context, id string) {
	if err := helpers.RedisDel(ctx, c.rdb, profileKey(id)); err != nil && c.logger != nil {
		c.logger.WithError(err).WithField("user_id", id).Warn("profile cache invalidation failed")
	}
}

var _ application.ProfileCache = (*RedisProfileCache)(nil)
