package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
	"go.uber.org/zap"
)

const keyPrefix = "content:"

// Backend stores opaque values with an expiry.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// Cache holds fetched content lists. A nil *Cache is valid and never hits.
type Cache struct {
	backend Backend
	ttl     time.Duration
	logger  *zap.Logger
}

func NewCache(backend Backend, ttl time.Duration, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{backend: backend, ttl: ttl, logger: logger}
}

func sermonsKey(limit int) string {
	return keyPrefix + "sermons:" + strconv.Itoa(limit)
}

const musicKey = keyPrefix + "music"

func (c *Cache) enabled() bool {
	return c != nil && c.backend != nil && c.ttl > 0
}

func (c *Cache) get(ctx context.Context, key string, dest any) bool {
	if !c.enabled() {
		return false
	}
	raw, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, value any) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.backend.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) GetSermons(ctx context.Context, limit int) ([]models.Sermon, bool) {
	var sermons []models.Sermon
	if !c.get(ctx, sermonsKey(limit), &sermons) {
		return nil, false
	}
	return sermons, true
}

func (c *Cache) SetSermons(ctx context.Context, limit int, sermons []models.Sermon) {
	c.set(ctx, sermonsKey(limit), sermons)
}

func (c *Cache) GetMusic(ctx context.Context) ([]models.Music, bool) {
	var music []models.Music
	if !c.get(ctx, musicKey, &music) {
		return nil, false
	}
	return music, true
}

func (c *Cache) SetMusic(ctx context.Context, music []models.Music) {
	c.set(ctx, musicKey, music)
}

// Invalidate drops every cached content list.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil || c.backend == nil {
		return nil
	}
	return c.backend.DeletePrefix(ctx, keyPrefix)
}

func (c *Cache) Close() error {
	if c == nil || c.backend == nil {
		return nil
	}
	return c.backend.Close()
}
