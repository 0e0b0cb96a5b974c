package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km1000101/the-Editors-hub/internal/structures"
	"github.com/km1000101/the-Editors-hub/internal/testutil"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <link>https://example.com</link>
    <item>
      <title>Feed item one</title>
      <link>https://example.com/one</link>
      <description>First item</description>
      <pubDate>Fri, 28 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Feed item two</title>
      <link>https://example.com/two</link>
      <description>Second item</description>
    </item>
  </channel>
</rss>`

func feedConfig(urls ...string) *structures.Config {
	return &structures.Config{News: structures.NewsConfig{Feeds: urls}}
}

func TestFeedFetch_ParsesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody))
	}))
	defer srv.Close()

	f := NewFeedSource(feedConfig(srv.URL), &testutil.MockLogger{})

	articles, err := f.Fetch(context.Background(), Query{Page: 1})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "Feed item one", articles[0].Title)
	assert.Equal(t, "Example Feed", articles[0].SourceName)
	assert.Equal(t, "all", articles[0].Category)
	assert.Equal(t, ArticleID("https://example.com/one"), articles[0].ID)
	assert.False(t, articles[0].PublishedAt.IsZero())
	// No pubDate on the second item
	assert.True(t, articles[1].PublishedAt.IsZero())
}

func TestFeedFetch_PageBeyondFirstIsEmpty(t *testing.T) {
	f := NewFeedSource(feedConfig("http://unused.invalid"), &testutil.MockLogger{})

	articles, err := f.Fetch(context.Background(), Query{Page: 2})
	require.NoError(t, err)
	assert.Nil(t, articles)
}

func TestFeedFetch_BrokenFeedSkipped(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssBody))
	}))
	defer good.Close()
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer broken.Close()

	logger := &testutil.MockLogger{}
	f := NewFeedSource(feedConfig(broken.URL, good.URL), logger)

	articles, err := f.Fetch(context.Background(), Query{Page: 1})
	require.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.GreaterOrEqual(t, logger.CountByLevel("warn"), 1)
}

func TestFeedFetch_AppliesSearchFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssBody))
	}))
	defer srv.Close()

	f := NewFeedSource(feedConfig(srv.URL), &testutil.MockLogger{})

	articles, err := f.Fetch(context.Background(), Query{Page: 1, SearchTerm: "second"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Feed item two", articles[0].Title)
}
