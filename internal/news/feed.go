package news

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

// FeedSource pulls articles from configured RSS/Atom feeds. Feeds have no
// server-side paging, so only page 1 yields results.
type FeedSource struct {
	feeds  []string
	parser *gofeed.Parser
	logger providers.Logger
}

func NewFeedSource(conf *structures.Config, logger providers.Logger) *FeedSource {
	return &FeedSource{
		feeds:  conf.News.Feeds,
		parser: gofeed.NewParser(),
		logger: logger,
	}
}

func (f *FeedSource) Fetch(ctx context.Context, q Query) ([]models.NewsArticle, error) {
	if q.Page > 1 {
		return nil, nil
	}

	var articles []models.NewsArticle
	for _, feedURL := range f.feeds {
		parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			// One broken feed must not take down the whole refresh.
			f.logger.Warnf(providers.TypeApp, "Skipping feed %s: %s", feedURL, err)
			continue
		}
		for _, item := range parsed.Items {
			articles = append(articles, itemToArticle(parsed, item))
		}
	}
	return filterArticles(articles, q), nil
}

func itemToArticle(feed *gofeed.Feed, item *gofeed.Item) models.NewsArticle {
	published := time.Time{}
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	}
	imageURL := ""
	if item.Image != nil {
		imageURL = item.Image.URL
	}
	return models.NewsArticle{
		ID:          ArticleID(item.Link),
		Title:       item.Title,
		Description: item.Description,
		URL:         item.Link,
		ImageURL:    imageURL,
		PublishedAt: published,
		SourceName:  feed.Title,
		Category:    "all",
	}
}
