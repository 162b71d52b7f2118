package server

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/carousel"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/content"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/filter"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	homeSermons = 3
	homeSongs   = 4
)

const (
	sermonsUnavailable = "Sermons are unavailable right now. Please try again later."
	musicUnavailable   = "Music is unavailable right now. Please try again later."
)

type errorPageData struct {
	Status  int
	Message string
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", errorPageData{Status: status, Message: message}); err != nil {
		s.logger.Error("Failed to render error template", zap.Error(err))
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, name, data); err != nil {
		s.logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
	}
}

// visit runs the hook for the lifetime of one request and returns its
// settled state. ok is false when the client went away first.
func visit[T any](ctx context.Context, r *content.Resource[T]) (content.State[T], bool) {
	defer r.Close()
	r.Start(ctx)
	state, err := r.Wait(ctx)
	return state, err == nil
}

func (s *Server) HandleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		sermons            content.State[models.Sermon]
		music              content.State[models.Music]
		sermonsOK, musicOK bool
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		sermons, sermonsOK = visit(ctx, content.Sermons(s.content, s.sermonLimit))
	})
	wg.Go(func() {
		music, musicOK = visit(ctx, content.Music(s.content))
	})
	wg.Wait()
	if !sermonsOK || !musicOK {
		return
	}

	data := models.HomePageData{
		Sermons: filter.Page(sermons.Data, homeSermons),
		Music:   filter.Page(music.Data, homeSongs),
	}
	switch {
	case sermons.Failed():
		data.Error = sermonsUnavailable
	case music.Failed():
		data.Error = musicUnavailable
	}
	s.render(w, "home.html", data)
}

func (s *Server) HandleSermons(w http.ResponseWriter, r *http.Request) {
	state, ok := visit(r.Context(), content.Sermons(s.content, s.sermonLimit))
	if !ok {
		return
	}

	q := parseSermonQuery(r.URL.Query(), s.loc)
	matched := filter.Sermons(state.Data, q.criteria)
	pager := filter.PagerAfter(q.form.Loads)

	data := models.SermonsPageData{
		Sermons: filter.Page(matched, pager.Visible()),
		Total:   len(state.Data),
		Matched: len(matched),
		Tags:    filter.Tags(state.Data),
		Form:    q.form,
		HasMore: pager.HasMore(len(matched)),
		Loading: state.Loading,
	}
	if data.HasMore {
		data.NextLoad = q.nextLoadURL()
	}
	if state.Failed() {
		data.Error = sermonsUnavailable
	}
	s.render(w, "sermons.html", data)
}

func (s *Server) HandleMusic(w http.ResponseWriter, r *http.Request) {
	state, ok := visit(r.Context(), content.Music(s.content))
	if !ok {
		return
	}

	criteria := filter.MusicCriteria{
		Query:      strings.TrimSpace(r.URL.Query().Get("q")),
		RecordType: strings.TrimSpace(r.URL.Query().Get("type")),
	}
	data := models.MusicPageData{
		Music:       filter.Music(state.Data, criteria),
		RecordTypes: filter.RecordTypes(state.Data),
		Query:       criteria.Query,
		RecordType:  criteria.RecordType,
	}
	if state.Failed() {
		data.Error = musicUnavailable
	}
	s.render(w, "music.html", data)
}

// HandleMinistry renders the carousel at the card chosen by ?page=.
func (s *Server) HandleMinistry(w http.ResponseWriter, r *http.Request) {
	tracker := carousel.NewTracker()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	page = max(0, min(page, len(ministries)-1))

	state := tracker.State(carousel.Position{
		ScrollLeft:  tracker.ScrollTarget(page),
		ScrollWidth: tracker.ScrollTarget(len(ministries)),
		ClientWidth: tracker.CardWidth,
	})
	data := models.MinistryPageData{
		Ministries: ministries,
		Dots:       tracker.Dots(len(ministries), state.CurrentPage),
		State:      state,
	}
	s.render(w, "ministry.html", data)
}

func (s *Server) HandleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, "about.html", models.AboutPageData{
		LastUpdated: s.now().In(s.loc).Format("Jan 2, 2006"),
	})
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
