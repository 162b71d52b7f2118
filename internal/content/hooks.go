package content

import (
	"context"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
)

// FailSoftSource never reports errors; failures arrive as empty lists.
type FailSoftSource interface {
	GetSermons(ctx context.Context, limit int) []models.Sermon
	GetMusic(ctx context.Context) []models.Music
}

// StrictSource reports fetch failures as errors.
type StrictSource interface {
	FetchSermons(ctx context.Context, limit int) ([]models.Sermon, error)
	FetchMusic(ctx context.Context) ([]models.Music, error)
}

// Sermons binds a sermon resource to a fail-soft source. Its Error stays empty
// when the CMS is down; the page sees an empty list instead.
func Sermons(src FailSoftSource, limit int) *Resource[models.Sermon] {
	return NewResource[models.Sermon](func(ctx context.Context) ([]models.Sermon, error) {
		return src.GetSermons(ctx, limit), nil
	})
}

func Music(src FailSoftSource) *Resource[models.Music] {
	return NewResource[models.Music](func(ctx context.Context) ([]models.Music, error) {
		return src.GetMusic(ctx), nil
	})
}

// StrictSermons binds a sermon resource whose Error reflects CMS failures.
func StrictSermons(src StrictSource, limit int) *Resource[models.Sermon] {
	return NewResource[models.Sermon](func(ctx context.Context) ([]models.Sermon, error) {
		return src.FetchSermons(ctx, limit)
	})
}

func StrictMusic(src StrictSource) *Resource[models.Music] {
	return NewResource[models.Music](src.FetchMusic)
}
