package cache

import (
	"context"
	"testing"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
)

func TestNewCache(t *testing.T) {
	c := NewCache(NewMemory(), 5*time.Minute, nil)
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
	if c.ttl != 5*time.Minute {
		t.Errorf("expected ttl 5m, got %v", c.ttl)
	}
}

func TestCacheSermons(t *testing.T) {
	ctx := context.Background()
	c := NewCache(NewMemory(), 1*time.Hour, nil)

	// Initially empty
	s, ok := c.GetSermons(ctx, 10)
	if ok || s != nil {
		t.Error("expected empty sermons cache")
	}

	c.SetSermons(ctx, 10, []models.Sermon{
		{Name: "Faith Walk", SermonDate: "2025-03-10", SermonTags: []string{"Hope"}},
		{Name: "Grace Notes", SermonDate: "2024-11-02", SermonTags: []string{}},
	})

	s, ok = c.GetSermons(ctx, 10)
	if !ok {
		t.Fatal("expected sermons to be cached")
	}
	if len(s) != 2 || s[0].Name != "Faith Walk" {
		t.Errorf("unexpected cached sermons: %+v", s)
	}

	// Different limits are different lists
	if _, ok := c.GetSermons(ctx, 20); ok {
		t.Error("expected miss for a different limit")
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := c.GetSermons(ctx, 10); ok {
		t.Error("expected sermons cache to be invalidated")
	}
}

func TestCacheSermonsExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewCache(NewMemory(), 10*time.Millisecond, nil)

	c.SetSermons(ctx, 10, []models.Sermon{{Name: "Test"}})

	if _, ok := c.GetSermons(ctx, 10); !ok {
		t.Error("expected sermons to be cached")
	}

	// Wait for expiry
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.GetSermons(ctx, 10); ok {
		t.Error("expected sermons cache to have expired")
	}
}

func TestCacheMusic(t *testing.T) {
	ctx := context.Background()
	c := NewCache(NewMemory(), 1*time.Hour, nil)

	if m, ok := c.GetMusic(ctx); ok || m != nil {
		t.Error("expected empty music cache")
	}

	c.SetMusic(ctx, []models.Music{
		{Name: "Overflow", Artists: []string{"Bright"}, SongLength: 245, HasMusicVideo: true},
	})

	m, ok := c.GetMusic(ctx)
	if !ok {
		t.Fatal("expected music to be cached")
	}
	if m[0].SongLength != 245 || !m[0].HasMusicVideo {
		t.Errorf("unexpected cached music: %+v", m[0])
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok := c.GetMusic(ctx); ok {
		t.Error("expected music cache to be invalidated")
	}
}

func TestDisabledCacheNeverHits(t *testing.T) {
	ctx := context.Background()

	for name, c := range map[string]*Cache{
		"nil":      nil,
		"zero ttl": NewCache(NewMemory(), 0, nil),
	} {
		c.SetMusic(ctx, []models.Music{{Name: "x"}})
		if _, ok := c.GetMusic(ctx); ok {
			t.Errorf("%s: expected disabled cache to miss", name)
		}
		if err := c.Invalidate(ctx); err != nil {
			t.Errorf("%s: invalidate: %v", name, err)
		}
	}
}

func TestMemoryDeletePrefixKeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_ = m.Set(ctx, "content:music", []byte("1"), time.Hour)
	_ = m.Set(ctx, "other:key", []byte("2"), time.Hour)

	if err := m.DeletePrefix(ctx, "content:"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.Get(ctx, "content:music"); ok {
		t.Error("expected prefixed key to be deleted")
	}
	if v, ok, _ := m.Get(ctx, "other:key"); !ok || string(v) != "2" {
		t.Error("expected unrelated key to survive")
	}
}
