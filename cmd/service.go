package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/cache"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/cms"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/metrics"
)

// newService wires the CMS client behind the configured cache. The returned
// cache must be closed by the caller.
func newService(ctx context.Context, m *metrics.Metrics) (*cms.Service, *cache.Cache, error) {
	cc := appConfig.Contentful
	client, err := cms.NewClient(cms.Config{
		SpaceID:     cc.SpaceID,
		AccessToken: cc.AccessToken,
		Environment: cc.Environment,
		Host:        cc.Host,
		Timeout:     cc.Timeout,
	}, log)
	if err != nil {
		return nil, nil, err
	}
	if cc.SpaceID == "" || cc.AccessToken == "" {
		log.Warn("Contentful credentials are not set; content lists will be empty")
	}

	var backend cache.Backend
	switch {
	case appConfig.Cache.TTL <= 0:
	case appConfig.Cache.RedisAddr != "":
		r, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     appConfig.Cache.RedisAddr,
			Password: appConfig.Cache.RedisPassword,
			DB:       appConfig.Cache.RedisDB,
		}, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
		}
		backend = r
	default:
		backend = cache.NewMemory()
	}
	c := cache.NewCache(backend, appConfig.Cache.TTL, log)
	if backend != nil {
		log.Info("Content cache enabled", zap.Duration("ttl", appConfig.Cache.TTL))
	}

	return cms.NewService(client, c, m, log), c, nil
}
