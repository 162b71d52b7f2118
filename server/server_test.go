package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/cms"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/metrics"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"
	"go.uber.org/zap"
)

type MockContent struct {
	mu            sync.Mutex
	sermons       []models.Sermon
	music         []models.Music
	fetchErr      error
	invalidateErr error
	invalidated   int
	sermonLimits  []int
}

func (m *MockContent) FetchSermons(ctx context.Context, limit int) ([]models.Sermon, error) {
	m.mu.Lock()
	m.sermonLimits = append(m.sermonLimits, limit)
	m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.sermons, nil
}

func (m *MockContent) FetchMusic(ctx context.Context) ([]models.Music, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.music, nil
}

func (m *MockContent) GetSermons(ctx context.Context, limit int) []models.Sermon {
	sermons, err := m.FetchSermons(ctx, limit)
	if err != nil {
		return []models.Sermon{}
	}
	return sermons
}

func (m *MockContent) GetMusic(ctx context.Context) []models.Music {
	music, err := m.FetchMusic(ctx)
	if err != nil {
		return []models.Music{}
	}
	return music
}

func (m *MockContent) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated++
	return m.invalidateErr
}

func mockTemplateFunc(wr io.Writer, name string, data any) error {
	_, err := wr.Write([]byte("rendered: " + name))
	return err
}

// recordingTemplates keeps the last page data handed to a template.
type recordingTemplates struct {
	name string
	data any
}

func (rt *recordingTemplates) Execute(wr io.Writer, name string, data any) error {
	rt.name = name
	rt.data = data
	return mockTemplateFunc(wr, name, data)
}

func newTestServer(src ContentSource) *Server {
	return &Server{
		version:     "test",
		port:        "8080",
		tmplFunc:    mockTemplateFunc,
		content:     src,
		logger:      zap.NewNop(),
		loc:         time.UTC,
		rateLimit:   500,
		timeout:     time.Minute,
		sermonLimit: 10,
		now:         func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func testSermons(n int) []models.Sermon {
	sermons := make([]models.Sermon, n)
	for i := range sermons {
		tags := []string{"faith"}
		if i%2 == 1 {
			tags = []string{"hope"}
		}
		sermons[i] = models.Sermon{
			Name:       fmt.Sprintf("Sermon %02d", i+1),
			SermonDate: fmt.Sprintf("2025-01-%02d", i+1),
			SermonTags: tags,
		}
	}
	return sermons
}

func TestFormatBuildVersion(t *testing.T) {
	version := FormatBuildVersion("1.0.0")
	if !strings.Contains(version, "1.0.0") {
		t.Errorf("expected version string to contain '1.0.0', got %q", version)
	}
	if !strings.Contains(version, "Go Version:") {
		t.Errorf("expected version string to contain 'Go Version:', got %q", version)
	}
}

func TestHandleHome(t *testing.T) {
	src := &MockContent{
		sermons: testSermons(5),
		music: []models.Music{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
		},
	}
	s := newTestServer(src)
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	s.HandleHome(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "home.html") {
		t.Error("expected home.html template to be rendered")
	}
	data, ok := rt.data.(models.HomePageData)
	if !ok {
		t.Fatalf("expected HomePageData, got %T", rt.data)
	}
	if len(data.Sermons) != 3 {
		t.Errorf("expected 3 sermons on home, got %d", len(data.Sermons))
	}
	if len(data.Music) != 4 {
		t.Errorf("expected 4 songs on home, got %d", len(data.Music))
	}
	if data.Error != "" {
		t.Errorf("expected no error, got %q", data.Error)
	}
	if len(src.sermonLimits) != 1 || src.sermonLimits[0] != 10 {
		t.Errorf("expected one fetch with limit 10, got %v", src.sermonLimits)
	}
}

func TestHandleSermonsFailSoft(t *testing.T) {
	src := &MockContent{fetchErr: cms.NewNetworkError(cms.ContentTypeSermons, io.ErrUnexpectedEOF)}
	s := newTestServer(src)
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	w := httptest.NewRecorder()
	s.HandleSermons(w, httptest.NewRequest("GET", "/sermons", nil))

	data := rt.data.(models.SermonsPageData)
	if len(data.Sermons) != 0 {
		t.Errorf("expected no sermons, got %d", len(data.Sermons))
	}
	if data.Loading || data.Error != "" {
		t.Errorf("expected settled state without error, got loading=%v error=%q", data.Loading, data.Error)
	}
}

func TestHandleSermonsFilterAndPaginate(t *testing.T) {
	src := &MockContent{sermons: testSermons(30)}
	s := newTestServer(src)
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	w := httptest.NewRecorder()
	s.HandleSermons(w, httptest.NewRequest("GET", "/sermons?tag=faith&q=sermon", nil))

	data := rt.data.(models.SermonsPageData)
	if data.Total != 30 {
		t.Errorf("expected total 30, got %d", data.Total)
	}
	if data.Matched != 15 {
		t.Errorf("expected 15 matches, got %d", data.Matched)
	}
	if len(data.Sermons) != 10 {
		t.Errorf("expected 10 visible, got %d", len(data.Sermons))
	}
	if !data.HasMore {
		t.Error("expected load more to be offered")
	}
	if !strings.Contains(data.NextLoad, "loads=1") || !strings.Contains(data.NextLoad, "tag=faith") {
		t.Errorf("expected next load URL to keep filters, got %q", data.NextLoad)
	}
	if len(data.Tags) != 2 || data.Tags[0] != "faith" || data.Tags[1] != "hope" {
		t.Errorf("expected tags [faith hope], got %v", data.Tags)
	}
	if !data.Form.SelectedTags["faith"] {
		t.Error("expected faith to be selected in the form")
	}

	w = httptest.NewRecorder()
	s.HandleSermons(w, httptest.NewRequest("GET", "/sermons?tag=faith&loads=1", nil))

	data = rt.data.(models.SermonsPageData)
	if len(data.Sermons) != 15 {
		t.Errorf("expected 15 visible after one load, got %d", len(data.Sermons))
	}
	if data.HasMore || data.NextLoad != "" {
		t.Errorf("expected no more to load, got hasMore=%v next=%q", data.HasMore, data.NextLoad)
	}
}

func TestHandleSermonsQueryIsNotTrimmed(t *testing.T) {
	src := &MockContent{sermons: testSermons(3)}
	s := newTestServer(src)
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	w := httptest.NewRecorder()
	s.HandleSermons(w, httptest.NewRequest("GET", "/sermons?q=+sermon", nil))

	data := rt.data.(models.SermonsPageData)
	if data.Form.Query != " sermon" {
		t.Errorf("expected the query echoed as typed, got %q", data.Form.Query)
	}
	if data.Matched != 0 {
		t.Errorf("expected no sermon to contain %q, got %d", data.Form.Query, data.Matched)
	}
}

func TestHandleSermonsDateRange(t *testing.T) {
	src := &MockContent{sermons: testSermons(10)}
	s := newTestServer(src)
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	w := httptest.NewRecorder()
	s.HandleSermons(w, httptest.NewRequest("GET", "/sermons?from=2025-01-03&to=2025-01-05", nil))

	data := rt.data.(models.SermonsPageData)
	if data.Matched != 3 {
		t.Errorf("expected 3 sermons in range, got %d", data.Matched)
	}
	if data.Form.From != "2025-01-03" || data.Form.To != "2025-01-05" {
		t.Errorf("expected form to echo the range, got %q..%q", data.Form.From, data.Form.To)
	}
}

func TestHandleMusicFilter(t *testing.T) {
	src := &MockContent{music: []models.Music{
		{Name: "Yahweh", Artists: []string{"Bright Egwuogu"}, RecordType: "single"},
		{Name: "Live Sessions", Artists: []string{"Bright Egwuogu"}, RecordType: "album"},
	}}
	s := newTestServer(src)
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	w := httptest.NewRecorder()
	s.HandleMusic(w, httptest.NewRequest("GET", "/music?type=Single", nil))

	data := rt.data.(models.MusicPageData)
	if len(data.Music) != 1 || data.Music[0].Name != "Yahweh" {
		t.Errorf("expected only the single, got %v", data.Music)
	}
	if len(data.RecordTypes) != 2 {
		t.Errorf("expected 2 record types, got %v", data.RecordTypes)
	}
}

func TestHandleMinistryCarousel(t *testing.T) {
	s := newTestServer(&MockContent{})
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	w := httptest.NewRecorder()
	s.HandleMinistry(w, httptest.NewRequest("GET", "/ministry?page=2", nil))

	data := rt.data.(models.MinistryPageData)
	if data.State.CurrentPage != 2 {
		t.Errorf("expected page 2, got %d", data.State.CurrentPage)
	}
	if !data.State.CanScrollLeft || !data.State.CanScrollRight {
		t.Errorf("expected both directions open, got %+v", data.State)
	}
	if len(data.Dots) != len(ministries) || !data.Dots[2].Active {
		t.Errorf("expected dot 2 active, got %+v", data.Dots)
	}

	s.HandleMinistry(httptest.NewRecorder(), httptest.NewRequest("GET", "/ministry?page=99", nil))
	data = rt.data.(models.MinistryPageData)
	if data.State.CanScrollRight {
		t.Error("expected last page to stop scrolling right")
	}
}

func TestHandleAbout(t *testing.T) {
	s := newTestServer(&MockContent{})
	rt := &recordingTemplates{}
	s.tmplFunc = rt.Execute

	s.HandleAbout(httptest.NewRecorder(), httptest.NewRequest("GET", "/about", nil))

	data := rt.data.(models.AboutPageData)
	if data.LastUpdated != "Mar 1, 2025" {
		t.Errorf("expected Mar 1, 2025, got %q", data.LastUpdated)
	}
}

func TestAPISermons(t *testing.T) {
	s := newTestServer(&MockContent{sermons: testSermons(12)})

	w := httptest.NewRecorder()
	s.HandleAPISermons(w, httptest.NewRequest("GET", "/api/sermons?tag=hope", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp sermonsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 12 || resp.Matched != 6 || resp.HasMore {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAPIFetchErrorIsBadGateway(t *testing.T) {
	s := newTestServer(&MockContent{fetchErr: cms.NewAuthError("invalid token", cms.ContentTypeMusic, http.StatusUnauthorized)})

	w := httptest.NewRecorder()
	s.HandleAPIMusic(w, httptest.NewRequest("GET", "/api/music", nil))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
	var resp apiError
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != cms.CodeAuth {
		t.Errorf("expected code %s, got %q", cms.CodeAuth, resp.Code)
	}
	if resp.Error == "" {
		t.Error("expected an error message")
	}
}

func TestAPISermonTags(t *testing.T) {
	s := newTestServer(&MockContent{sermons: testSermons(4)})

	w := httptest.NewRecorder()
	s.HandleAPISermonTags(w, httptest.NewRequest("GET", "/api/sermons/tags", nil))

	var tags []string
	if err := json.Unmarshal(w.Body.Bytes(), &tags); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tags) != 2 || tags[0] != "faith" || tags[1] != "hope" {
		t.Errorf("expected [faith hope], got %v", tags)
	}
}

func TestRequireWebhookSecretMiddleware(t *testing.T) {
	s := newTestServer(&MockContent{})

	called := false
	handler := s.RequireWebhookSecret(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	// No secret configured - route is hidden
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/hooks/contentful", nil))
	if called || w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a configured secret, got %d", w.Code)
	}

	s.webhookSecret = "s3cret"

	req := httptest.NewRequest("POST", "/hooks/contentful", nil)
	req.Header.Set(webhookSecretHeader, "wrong")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if called || w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a wrong secret, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/hooks/contentful", nil)
	req.Header.Set(webhookSecretHeader, "s3cret")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if !called {
		t.Error("handler should be called with the right secret")
	}
}

func TestHandleContentfulWebhook(t *testing.T) {
	src := &MockContent{}
	s := newTestServer(src)

	w := httptest.NewRecorder()
	s.HandleContentfulWebhook(w, httptest.NewRequest("POST", "/hooks/contentful", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
	if src.invalidated != 1 {
		t.Errorf("expected one invalidation, got %d", src.invalidated)
	}

	src.invalidateErr = io.ErrClosedPipe
	w = httptest.NewRecorder()
	s.HandleContentfulWebhook(w, httptest.NewRequest("POST", "/hooks/contentful", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestRoutes(t *testing.T) {
	s := NewServer(Config{
		Version:   "test",
		Port:      "0",
		Assets:    http.FS(fstest.MapFS{"static/robots.txt": {Data: []byte("User-agent: *")}}),
		Templates: mockTemplateFunc,
		Content:   &MockContent{sermons: testSermons(2)},
		Metrics:   metrics.New(),
		Logger:    zap.NewNop(),
		Location:  time.UTC,
	})
	h := s.Routes()

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{"GET", "/", http.StatusOK, "home.html"},
		{"GET", "/sermons", http.StatusOK, "sermons.html"},
		{"GET", "/music", http.StatusOK, "music.html"},
		{"GET", "/ministry", http.StatusOK, "ministry.html"},
		{"GET", "/about", http.StatusOK, "about.html"},
		{"GET", "/api/sermons/tags", http.StatusOK, "faith"},
		{"GET", "/robots.txt", http.StatusOK, "User-agent"},
		{"GET", "/health", http.StatusOK, "."},
		{"GET", "/metrics", http.StatusOK, "go_goroutines"},
		{"POST", "/hooks/contentful", http.StatusNotFound, ""},
		{"GET", "/nope", http.StatusNotFound, "error.html"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != tt.status {
			t.Errorf("%s %s: expected status %d, got %d", tt.method, tt.path, tt.status, w.Code)
		}
		if !strings.Contains(w.Body.String(), tt.body) {
			t.Errorf("%s %s: expected body to contain %q, got %q", tt.method, tt.path, tt.body, w.Body.String())
		}
	}
}

func TestCacheControlMiddleware(t *testing.T) {
	s := newTestServer(&MockContent{})

	handler := s.cacheControl(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Static file request
	req := httptest.NewRequest("GET", "/static/style.css", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cacheHeader := w.Header().Get("Cache-Control")
	if !strings.Contains(cacheHeader, "max-age=86400") {
		t.Errorf("expected cache header for static files, got %q", cacheHeader)
	}

	// Non-static request
	req = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	cacheHeader = w.Header().Get("Cache-Control")
	if !strings.Contains(cacheHeader, "no-cache") {
		t.Errorf("expected no-cache for non-static, got %q", cacheHeader)
	}
}
