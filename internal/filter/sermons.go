// Package filter derives the visible subset of a fetched content list from
// independent facets. Facets combine with AND; values inside the tag facet
// combine with OR.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/datefmt"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
)

// DateRange bounds are calendar days; the time of day is ignored.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

type Criteria struct {
	Query    string
	Range    DateRange
	Tags     []string
	Location *time.Location
}

func (c Criteria) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Matches reports whether s passes every facet of c.
func (c Criteria) Matches(s models.Sermon) bool {
	loc := c.location()
	return MatchesQuery(s, c.Query, loc) &&
		MatchesRange(s, c.Range, loc) &&
		MatchesTags(s, c.Tags)
}

// MatchesQuery is a case-insensitive substring match against the name or the
// long-form display date. The query is used as typed; only "" matches all.
func MatchesQuery(s models.Sermon, query string, loc *time.Location) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	long := datefmt.LongString(s.SermonDate, loc)
	return long != "" && strings.Contains(strings.ToLower(long), q)
}

func MatchesRange(s models.Sermon, r DateRange, loc *time.Location) bool {
	if r.IsZero() {
		return true
	}
	date, err := datefmt.Parse(s.SermonDate, loc)
	if err != nil {
		return false
	}
	if r.From != nil && date.Before(datefmt.StartOfDay(*r.From, loc)) {
		return false
	}
	if r.To != nil && date.After(datefmt.EndOfDay(*r.To, loc)) {
		return false
	}
	return true
}

// MatchesTags is true when selected is empty or shares at least one tag with s.
func MatchesTags(s models.Sermon, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range s.SermonTags {
		for _, want := range selected {
			if tag == want {
				return true
			}
		}
	}
	return false
}

// Sermons returns the sermons of all that match c, in their original order.
func Sermons(all []models.Sermon, c Criteria) []models.Sermon {
	out := make([]models.Sermon, 0, len(all))
	for _, s := range all {
		if c.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Tags is the sorted, de-duplicated tag vocabulary of the full list.
func Tags(all []models.Sermon) []string {
	seen := make(map[string]struct{})
	for _, s := range all {
		for _, tag := range s.SermonTags {
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
