package server

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/datefmt"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/filter"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
)

type sermonQuery struct {
	criteria filter.Criteria
	form     models.SermonFilterForm
}

// parseSermonQuery reads q, from, to, tag and loads. Unparsable dates leave
// that bound open.
func parseSermonQuery(values url.Values, loc *time.Location) sermonQuery {
	q := sermonQuery{
		form: models.SermonFilterForm{
			Query:        values.Get("q"),
			From:         strings.TrimSpace(values.Get("from")),
			To:           strings.TrimSpace(values.Get("to")),
			SelectedTags: make(map[string]bool),
		},
	}
	q.criteria.Query = q.form.Query
	q.criteria.Location = loc

	if t, err := datefmt.Parse(q.form.From, loc); err == nil {
		q.criteria.Range.From = &t
	} else {
		q.form.From = ""
	}
	if t, err := datefmt.Parse(q.form.To, loc); err == nil {
		q.criteria.Range.To = &t
	} else {
		q.form.To = ""
	}

	for _, tag := range values["tag"] {
		tag = strings.TrimSpace(tag)
		if tag == "" || q.form.SelectedTags[tag] {
			continue
		}
		q.form.SelectedTags[tag] = true
		q.criteria.Tags = append(q.criteria.Tags, tag)
	}

	if n, err := strconv.Atoi(values.Get("loads")); err == nil && n > 0 {
		q.form.Loads = min(n, filter.MaxLoads)
	}
	return q
}

// nextLoadURL is the sermons URL that reveals one more step under the same
// filters.
func (q sermonQuery) nextLoadURL() string {
	values := url.Values{}
	if q.form.Query != "" {
		values.Set("q", q.form.Query)
	}
	if q.form.From != "" {
		values.Set("from", q.form.From)
	}
	if q.form.To != "" {
		values.Set("to", q.form.To)
	}
	for _, tag := range q.criteria.Tags {
		values.Add("tag", tag)
	}
	values.Set("loads", strconv.Itoa(q.form.Loads+1))
	return "/sermons?" + values.Encode()
}
