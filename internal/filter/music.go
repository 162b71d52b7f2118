package filter

import (
	"sort"
	"strings"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
)

type MusicCriteria struct {
	Query      string
	RecordType string
}

func (c MusicCriteria) Matches(m models.Music) bool {
	if rt := strings.TrimSpace(c.RecordType); rt != "" && !strings.EqualFold(rt, m.RecordType) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(c.Query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	for _, artist := range m.Artists {
		if strings.Contains(strings.ToLower(artist), q) {
			return true
		}
	}
	return false
}

func Music(all []models.Music, c MusicCriteria) []models.Music {
	out := make([]models.Music, 0, len(all))
	for _, m := range all {
		if c.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// RecordTypes lists the distinct record types, sorted, ignoring blanks.
func RecordTypes(all []models.Music) []string {
	seen := make(map[string]struct{})
	for _, m := range all {
		if m.RecordType != "" {
			seen[m.RecordType] = struct{}{}
		}
	}
	types := make([]string, 0, len(seen))
	for rt := range seen {
		types = append(types, rt)
	}
	sort.Strings(types)
	return types
}
