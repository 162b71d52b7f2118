package cms

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/datefmt"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
	"go.uber.org/zap"
)

// AssetURL turns the protocol-relative URLs Contentful hands out into https.
func AssetURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

func assetIndex(c *collection) map[string]*models.Asset {
	idx := make(map[string]*models.Asset, len(c.Includes.Asset))
	for _, a := range c.Includes.Asset {
		if a.Fields.File.URL == "" {
			continue
		}
		idx[a.Sys.ID] = &models.Asset{
			URL:         AssetURL(a.Fields.File.URL),
			Title:       a.Fields.Title,
			ContentType: a.Fields.File.ContentType,
			Width:       a.Fields.File.Details.Image.Width,
			Height:      a.Fields.File.Details.Image.Height,
		}
	}
	return idx
}

func resolveAsset(l *link, idx map[string]*models.Asset) *models.Asset {
	if l == nil || l.Sys.LinkType != "Asset" {
		return nil
	}
	a, ok := idx[l.Sys.ID]
	if !ok {
		return nil
	}
	cp := *a
	return &cp
}

func validDate(s string) bool {
	_, err := datefmt.Parse(s, time.UTC)
	return err == nil
}

func mapSermons(c *collection, logger *zap.Logger) ([]models.Sermon, error) {
	assets := assetIndex(c)
	out := make([]models.Sermon, 0, len(c.Items))
	for _, item := range c.Items {
		var f sermonFields
		if err := json.Unmarshal(item.Fields, &f); err != nil {
			return nil, NewSchemaError("unexpected sermon fields", ContentTypeSermons, 0, err)
		}
		if strings.TrimSpace(f.Name) == "" || !validDate(f.SermonDate) {
			logger.Warn("Skipping sermon entry",
				zap.String("entry_id", item.Sys.ID),
				zap.String("name", f.Name),
				zap.String("sermon_date", f.SermonDate),
			)
			continue
		}
		tags := f.SermonTags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, models.Sermon{
			Name:              f.Name,
			SermonDate:        f.SermonDate,
			YouTubeLink:       f.YouTubeLink,
			ThumbnailImage:    resolveAsset(f.ThumbnailImage, assets),
			SermonDescription: f.SermonDescription,
			SermonTags:        tags,
		})
	}
	return out, nil
}

func mapMusic(c *collection, logger *zap.Logger) ([]models.Music, error) {
	assets := assetIndex(c)
	out := make([]models.Music, 0, len(c.Items))
	for _, item := range c.Items {
		var f musicFields
		if err := json.Unmarshal(item.Fields, &f); err != nil {
			return nil, NewSchemaError("unexpected music fields", ContentTypeMusic, 0, err)
		}
		if strings.TrimSpace(f.Name) == "" {
			logger.Warn("Skipping music entry without name", zap.String("entry_id", item.Sys.ID))
			continue
		}
		artists := f.Artists
		if artists == nil {
			artists = []string{}
		}
		out = append(out, models.Music{
			Name:            f.Name,
			Artists:         artists,
			ReleaseDate:     f.ReleaseDate,
			SongLength:      int(f.SongLength),
			RecordType:      f.RecordType,
			PrimaryColor:    f.PrimaryColor,
			MusicThumbnail:  resolveAsset(f.MusicThumbnail, assets),
			HasMusicVideo:   f.HasMusicVideo,
			SpotifyLink:     f.SpotifyLink,
			AppleMusicLink:  f.AppleMusicLink,
			AmazonMusicLink: f.AmazonMusicLink,
			DeezerLink:      f.DeezerLink,
			YouTubeLink:     f.YouTubeLink,
		})
	}
	return out, nil
}
