package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km1000101/the-Editors-hub/internal/controllers"
	"github.com/km1000101/the-Editors-hub/internal/news"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
	"github.com/km1000101/the-Editors-hub/internal/storage"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

// --- minimal mocks for routes test ---

type routeTestLogger struct{}

func (m *routeTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Close()                                                  {}

type routeTestCache struct{}

func (m *routeTestCache) Get(_ string) ([]byte, bool) { return nil, false }
func (m *routeTestCache) Set(_ string, _ []byte)      {}

type routeTestKV struct {
	data map[string][]byte
}

func (m *routeTestKV) Load(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *routeTestKV) Save(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *routeTestKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func routesForTest() []structures.Route {
	logger := &routeTestLogger{}
	conf := &structures.Config{
		Draft: structures.DraftConfig{AutosaveDelay: time.Second},
	}
	store := services.NewStoreService()
	drafts := storage.NewDraftAutosaver(conf, &routeTestKV{data: map[string][]byte{}}, logger)
	svc := news.NewService(conf, logger, store, news.NewClient(conf, logger), news.NewFeedSource(conf, logger))

	auth := controllers.NewAuthController(logger, store)
	blog := controllers.NewBlogController(logger, store, drafts)
	newsC := controllers.NewNewsController(logger, store, svc)
	analyticsC := controllers.NewAnalyticsController(logger, store, &routeTestCache{})

	return InitRoutes(auth, blog, newsC, analyticsC, conf).GetRoutes()
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	routes := routesForTest()

	require.Len(t, routes, 23)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	expected := []string{
		"/auth/login", "/auth/signup", "/auth/logout", "/auth/session",
		"/posts", "/posts/create", "/posts/update", "/posts/delete",
		"/posts/view", "/posts/like", "/posts/bookmark", "/posts/comment",
		"/drafts", "/drafts/update", "/drafts/clear",
		"/news", "/news/more", "/news/categories", "/news/refresh",
		"/bookmarks", "/bookmarks/toggle",
		"/analytics", "/analytics/summary",
	}
	for _, url := range expected {
		assert.Contains(t, urls, url)
	}
}

func TestInitRoutes_UniquePaths(t *testing.T) {
	routes := routesForTest()

	// ServeMux panics on duplicate patterns, so every path must be unique.
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		assert.False(t, seen[r.Url], r.Url)
		seen[r.Url] = true
	}
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	routes := routesForTest()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	// GET /posts with POST should fail
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST /auth/login with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
