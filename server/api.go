package server

import (
	"encoding/json"
	"net/http"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/cms"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/content"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/filter"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
	"go.uber.org/zap"
)

type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type sermonsResponse struct {
	Total   int             `json:"total"`
	Matched int             `json:"matched"`
	HasMore bool            `json:"hasMore"`
	Sermons []models.Sermon `json:"sermons"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeFetchError(w http.ResponseWriter, err error) {
	s.writeJSON(w, http.StatusBadGateway, apiError{Error: err.Error(), Code: cms.Code(err)})
}

func (s *Server) HandleAPISermons(w http.ResponseWriter, r *http.Request) {
	res := content.StrictSermons(s.content, s.sermonLimit)
	state, ok := visit(r.Context(), res)
	if !ok {
		return
	}
	if state.Failed() {
		s.writeFetchError(w, res.Err())
		return
	}

	q := parseSermonQuery(r.URL.Query(), s.loc)
	matched := filter.Sermons(state.Data, q.criteria)
	pager := filter.PagerAfter(q.form.Loads)
	s.writeJSON(w, http.StatusOK, sermonsResponse{
		Total:   len(state.Data),
		Matched: len(matched),
		HasMore: pager.HasMore(len(matched)),
		Sermons: filter.Page(matched, pager.Visible()),
	})
}

func (s *Server) HandleAPISermonTags(w http.ResponseWriter, r *http.Request) {
	res := content.StrictSermons(s.content, s.sermonLimit)
	state, ok := visit(r.Context(), res)
	if !ok {
		return
	}
	if state.Failed() {
		s.writeFetchError(w, res.Err())
		return
	}
	s.writeJSON(w, http.StatusOK, filter.Tags(state.Data))
}

func (s *Server) HandleAPIMusic(w http.ResponseWriter, r *http.Request) {
	res := content.StrictMusic(s.content)
	state, ok := visit(r.Context(), res)
	if !ok {
		return
	}
	if state.Failed() {
		s.writeFetchError(w, res.Err())
		return
	}

	criteria := filter.MusicCriteria{
		Query:      r.URL.Query().Get("q"),
		RecordType: r.URL.Query().Get("type"),
	}
	s.writeJSON(w, http.StatusOK, filter.Music(state.Data, criteria))
}
