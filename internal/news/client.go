// Package news integrates the external article sources: a JSON news API
// and optional RSS feeds. The rest of the system treats their output as
// opaque input to the store's SetNewsArticles action.
package news

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

const defaultPageSize = 20

// Query selects a page of articles from a source.
type Query struct {
	Category   string
	SearchTerm string
	Page       int
}

// SourceInterface is any provider of article pages. An empty result page
// means the source is exhausted for that query.
type SourceInterface interface {
	Fetch(ctx context.Context, q Query) ([]models.NewsArticle, error)
}

// Client fetches pages from a NewsAPI-style JSON endpoint.
type Client struct {
	conf     *structures.Config
	logger   providers.Logger
	http     *http.Client
	pageSize int
}

func NewClient(conf *structures.Config, logger providers.Logger) *Client {
	timeout := conf.News.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pageSize := conf.News.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		conf:     conf,
		logger:   logger,
		http:     &http.Client{Timeout: timeout},
		pageSize: pageSize,
	}
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
}

type apiResponse struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

func (c *Client) Fetch(ctx context.Context, q Query) ([]models.NewsArticle, error) {
	if c.conf.News.BaseURL == "" {
		return nil, nil
	}

	u, err := url.Parse(c.conf.News.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid news base url: %w", err)
	}
	params := u.Query()
	if q.Category != "" && q.Category != "all" {
		params.Set("category", q.Category)
	}
	if q.SearchTerm != "" {
		params.Set("q", q.SearchTerm)
	}
	params.Set("page", fmt.Sprintf("%d", max(q.Page, 1)))
	params.Set("pageSize", fmt.Sprintf("%d", c.pageSize))
	if c.conf.News.APIKey != "" {
		params.Set("apiKey", c.conf.News.APIKey)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news fetch: upstream returned %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("news fetch: decode: %w", err)
	}
	if payload.Status != "" && payload.Status != "ok" {
		return nil, fmt.Errorf("news fetch: upstream status %q: %s", payload.Status, payload.Message)
	}

	articles := make([]models.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, models.NewsArticle{
			ID:          ArticleID(a.URL),
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
			SourceName:  a.Source.Name,
			Category:    normalizeCategory(q.Category),
		})
	}
	return articles, nil
}

// ArticleID derives a stable article id from its URL so bookmarks keep
// pointing at the same article across refreshes. Articles without a URL get
// a random id.
func ArticleID(articleURL string) string {
	if articleURL == "" {
		return uuid.NewString()
	}
	h := fnv.New64a()
	h.Write([]byte(articleURL))
	return fmt.Sprintf("%016x", h.Sum64())
}

func normalizeCategory(category string) string {
	if category == "" {
		return "all"
	}
	return category
}
