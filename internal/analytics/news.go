package analytics

import (
	"time"

	"github.com/km1000101/the-Editors-hub/internal/models"
)

// AggregateNews builds the news-side dashboard series: publication volume
// per day in the views series, bookmark activity per day in the likes
// series. News articles carry no comment data, so that series stays zero.
func AggregateNews(articles []models.NewsArticle, bookmarks []models.Bookmark, now time.Time) models.AnalyticsData {
	keys := DayKeys(now)
	indexByDay := make(map[string]int, WindowDays)
	for i, k := range keys {
		indexByDay[k] = i
	}

	published := make([]int, WindowDays)
	saved := make([]int, WindowDays)

	for _, a := range articles {
		if idx, ok := indexByDay[a.PublishedAt.Format(dayFormat)]; ok {
			published[idx]++
		}
	}
	for _, b := range bookmarks {
		if idx, ok := indexByDay[b.CreatedAt.Format(dayFormat)]; ok {
			saved[idx]++
		}
	}

	top := make([]models.TopPost, 0, topPostsLimit)
	for _, a := range articles {
		if len(top) == topPostsLimit {
			break
		}
		top = append(top, models.TopPost{Title: truncateTitle(a.Title)})
	}

	return models.AnalyticsData{
		PostViews: toSeries(keys, published),
		PostLikes: toSeries(keys, saved),
		Comments:  toSeries(keys, make([]int, WindowDays)),
		TopPosts:  top,
	}
}
