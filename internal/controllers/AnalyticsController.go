package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/km1000101/the-Editors-hub/internal/analytics"
	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
)

// AnalyticsController serves the dashboard series and summary tiles.
// Responses are cached keyed by store version, so any state change
// naturally invalidates them.
type AnalyticsController struct {
	logger providers.Logger
	store  services.StoreServiceInterface
	cache  providers.CacheProviderInterface
}

func NewAnalyticsController(logger providers.Logger, store services.StoreServiceInterface, cache providers.CacheProviderInterface) *AnalyticsController {
	return &AnalyticsController{logger: logger, store: store, cache: cache}
}

func (ac *AnalyticsController) viewer() string {
	if user := ac.store.User(); user != nil {
		return user.Username
	}
	return ""
}

func (ac *AnalyticsController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func sourceParam(r *http.Request) string {
	if r.URL.Query().Get("source") == "news" {
		return "news"
	}
	return "blog"
}

func (ac *AnalyticsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	source := sourceParam(r)

	if source == "news" {
		// Pass-through slice filled by the news refresh.
		writeJSON(w, http.StatusOK, ac.store.State().NewsAnalytics)
		return
	}

	viewer := ac.viewer()
	day := time.Now().Format("2006-01-02")
	key := fmt.Sprintf("analytics:blog:%s:%s:v%d", viewer, day, ac.store.Version())
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return analytics.Aggregate(ac.store.BlogPosts(), time.Now(), viewer), nil
	})
}

func (ac *AnalyticsController) Summary(w http.ResponseWriter, r *http.Request) {
	source := sourceParam(r)

	if source == "news" {
		writeJSON(w, http.StatusOK, models.EngagementSummary{
			TotalPosts: len(ac.store.NewsArticles()),
		})
		return
	}

	viewer := ac.viewer()
	key := fmt.Sprintf("summary:blog:%s:v%d", viewer, ac.store.Version())
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return analytics.Summarize(ac.store.BlogPosts(), viewer), nil
	})
}
