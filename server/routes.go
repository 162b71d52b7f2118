package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))
	r.Use(middleware.Compress(5))
	r.Use(httprate.Limit(s.rateLimit, time.Minute))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.cacheControl)

	r.Mount("/static", http.FileServer(s.assets))
	r.Handle("/metrics", s.metrics.Handler())

	r.Handle("/robots.txt", s.serveFile("static/robots.txt"))

	r.Get("/", s.HandleHome)
	r.Get("/music", s.HandleMusic)
	r.Get("/sermons", s.HandleSermons)
	r.Get("/ministry", s.HandleMinistry)
	r.Get("/about", s.HandleAbout)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sermons", s.HandleAPISermons)
		r.Get("/sermons/tags", s.HandleAPISermonTags)
		r.Get("/music", s.HandleAPIMusic)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.RequireWebhookSecret)
		r.Post("/hooks/contentful", s.HandleContentfulWebhook)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, http.StatusNotFound, "Page not found")
	})

	return r
}
