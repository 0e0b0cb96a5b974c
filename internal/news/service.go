package news

import (
	"context"
	"time"

	"github.com/km1000101/the-Editors-hub/internal/analytics"
	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

// Categories the UI exposes for filtering.
var Categories = []string{
	"all", "technology", "business", "health", "sports", "entertainment", "science",
}

// Service ties the article sources to the store: it owns the pager for
// incremental loading and the full refresh used by the scheduler.
type Service struct {
	conf   *structures.Config
	logger providers.Logger
	store  services.StoreServiceInterface
	api    *Client
	feeds  *FeedSource
	pager  *Pager
}

func NewService(conf *structures.Config, logger providers.Logger, store services.StoreServiceInterface, api *Client, feeds *FeedSource) *Service {
	return &Service{
		conf:   conf,
		logger: logger,
		store:  store,
		api:    api,
		feeds:  feeds,
		pager:  NewPager(api, store),
	}
}

func (s *Service) Pager() *Pager {
	return s.pager
}

// Refresh replaces the stored articles with page 1 of the API source plus
// everything the RSS feeds currently carry, then recomputes the news
// analytics slice. A failing source leaves the state untouched.
func (s *Service) Refresh(ctx context.Context) error {
	articles, err := s.api.Fetch(ctx, Query{Page: 1})
	if err != nil {
		return err
	}

	if s.feeds != nil && len(s.conf.News.Feeds) > 0 {
		feedArticles, err := s.feeds.Fetch(ctx, Query{Page: 1})
		if err == nil {
			articles = append(articles, feedArticles...)
		}
	}

	s.pager.Reset("", "")
	s.pager.mu.Lock()
	s.pager.page = 1 // refresh already consumed page 1
	s.pager.mu.Unlock()

	s.store.Dispatch(models.SetNewsArticles{Articles: articles})
	s.store.Dispatch(models.UpdateNewsAnalytics{
		Analytics: analytics.AggregateNews(articles, s.store.Bookmarks(), time.Now()),
	})
	return nil
}

// Filter applies category and search filtering over the stored articles.
func (s *Service) Filter(category, searchTerm string) []models.NewsArticle {
	return filterArticles(s.store.NewsArticles(), Query{Category: category, SearchTerm: searchTerm})
}
