package cms

import (
	"context"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/cache"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/metrics"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
	"go.uber.org/zap"
)

const DefaultSermonLimit = 10

// Service is the content access layer. Fetch* report typed errors; Get*
// degrade every failure to an empty list.
type Service struct {
	client  *Client
	cache   *cache.Cache
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewService(client *Client, c *cache.Cache, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, cache: c, metrics: m, logger: logger}
}

func (s *Service) FetchSermons(ctx context.Context, limit int) ([]models.Sermon, error) {
	if limit <= 0 {
		limit = DefaultSermonLimit
	}
	if cached, ok := s.cache.GetSermons(ctx, limit); ok {
		s.metrics.ObserveCache(ContentTypeSermons, true)
		return cached, nil
	}
	s.metrics.ObserveCache(ContentTypeSermons, false)

	start := time.Now()
	col, err := s.client.entries(ctx, ContentTypeSermons, limit)
	s.metrics.ObserveFetch(ContentTypeSermons, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	sermons, err := mapSermons(col, s.logger)
	if err != nil {
		return nil, err
	}
	s.cache.SetSermons(ctx, limit, sermons)
	return sermons, nil
}

func (s *Service) FetchMusic(ctx context.Context) ([]models.Music, error) {
	if cached, ok := s.cache.GetMusic(ctx); ok {
		s.metrics.ObserveCache(ContentTypeMusic, true)
		return cached, nil
	}
	s.metrics.ObserveCache(ContentTypeMusic, false)

	start := time.Now()
	col, err := s.client.entries(ctx, ContentTypeMusic, 0)
	s.metrics.ObserveFetch(ContentTypeMusic, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	music, err := mapMusic(col, s.logger)
	if err != nil {
		return nil, err
	}
	s.cache.SetMusic(ctx, music)
	return music, nil
}

// GetSermons never fails: errors are logged and an empty list is returned.
func (s *Service) GetSermons(ctx context.Context, limit int) []models.Sermon {
	sermons, err := s.FetchSermons(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to fetch sermons",
			zap.String("code", Code(err)),
			zap.Error(err),
		)
		return []models.Sermon{}
	}
	return sermons
}

// GetMusic never fails: errors are logged and an empty list is returned.
func (s *Service) GetMusic(ctx context.Context) []models.Music {
	music, err := s.FetchMusic(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch music",
			zap.String("code", Code(err)),
			zap.Error(err),
		)
		return []models.Music{}
	}
	return music
}

// Invalidate drops cached lists so the next read goes to the CMS.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}
