// Package analytics derives dashboard time series from the post collection.
// Everything here is a stateless pure computation: same inputs, bit-identical
// output, no randomness.
package analytics

import (
	"sort"
	"time"

	"github.com/km1000101/the-Editors-hub/internal/models"
)

const (
	// WindowDays is the fixed length of every engagement time series.
	WindowDays = 30

	topPostsLimit = 5
	titleMaxLen   = 30
)

const dayFormat = "2006-01-02"

// DayKeys returns the 30 consecutive ISO calendar days ending at now
// (inclusive), oldest first. This is the fixed x-axis of every series.
func DayKeys(now time.Time) []string {
	keys := make([]string, WindowDays)
	for i := 0; i < WindowDays; i++ {
		keys[i] = now.AddDate(0, 0, -(WindowDays - 1 - i)).Format(dayFormat)
	}
	return keys
}

func filterByAuthor(posts []models.BlogPost, viewerUsername string) []models.BlogPost {
	if viewerUsername == "" {
		return posts
	}
	filtered := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Author == viewerUsername {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// distribute spreads total evenly across the daysBetween most recent
// buckets: base = total/days into each, with the remainder going one-per-day
// to the most recent buckets. The bucket sums always add up to total.
func distribute(buckets []int, total, daysBetween int) {
	if total <= 0 {
		return
	}
	if daysBetween < 1 {
		daysBetween = 1
	}
	if daysBetween > len(buckets) {
		daysBetween = len(buckets)
	}
	base := total / daysBetween
	extra := total % daysBetween
	for j := 0; j < daysBetween; j++ {
		idx := len(buckets) - 1 - j
		buckets[idx] += base
		if j < extra {
			buckets[idx]++
		}
	}
}

// daysBetween is the number of day buckets a post's counters spread over:
// whole days from effectiveStart to now, plus one for today, clamped to at
// least 1 so the division below can never be by zero.
func daysBetween(now, createdAt time.Time) int {
	effectiveStart := now.AddDate(0, 0, -(WindowDays - 1))
	if createdAt.After(effectiveStart) {
		effectiveStart = createdAt
	}
	d := int(now.Sub(effectiveStart).Hours()/24) + 1
	if d < 1 {
		d = 1
	}
	return d
}

// Aggregate buckets the filtered posts' engagement counters into fixed
// 30-day series ending at now, plus a stable top-5 ranking. It never fails:
// empty input yields 30 zero buckets per series and an empty ranking.
func Aggregate(posts []models.BlogPost, now time.Time, viewerUsername string) models.AnalyticsData {
	filtered := filterByAuthor(posts, viewerUsername)
	keys := DayKeys(now)

	views := make([]int, WindowDays)
	likes := make([]int, WindowDays)
	comments := make([]int, WindowDays)

	indexByDay := make(map[string]int, WindowDays)
	for i, k := range keys {
		indexByDay[k] = i
	}

	for _, p := range filtered {
		d := daysBetween(now, p.CreatedAt)
		distribute(views, p.Views, d)
		distribute(likes, p.Likes, d)

		// Comments carry their own creation day; those outside the
		// window fall out of the series but stay in the raw totals.
		for _, c := range p.Comments {
			if idx, ok := indexByDay[c.CreatedAt.Format(dayFormat)]; ok {
				comments[idx]++
			}
		}
	}

	return models.AnalyticsData{
		PostViews: toSeries(keys, views),
		PostLikes: toSeries(keys, likes),
		Comments:  toSeries(keys, comments),
		TopPosts:  topPosts(filtered),
	}
}

func toSeries(keys []string, values []int) []models.TimeSeriesPoint {
	series := make([]models.TimeSeriesPoint, len(keys))
	for i := range keys {
		series[i] = models.TimeSeriesPoint{Date: keys[i], Value: values[i]}
	}
	return series
}

func topPosts(posts []models.BlogPost) []models.TopPost {
	ranked := make([]models.BlogPost, len(posts))
	copy(ranked, posts)
	// Stable sort keeps the original relative order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement() > ranked[j].Engagement()
	})
	if len(ranked) > topPostsLimit {
		ranked = ranked[:topPostsLimit]
	}

	top := make([]models.TopPost, len(ranked))
	for i, p := range ranked {
		top[i] = models.TopPost{
			Title: truncateTitle(p.Title),
			Views: p.Views,
			Likes: p.Likes,
		}
	}
	return top
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= titleMaxLen {
		return title
	}
	return string(runes[:titleMaxLen]) + "..."
}

// Summarize computes the dashboard tile totals as straight sums over the
// filtered posts, independent of the bucketed series.
func Summarize(posts []models.BlogPost, viewerUsername string) models.EngagementSummary {
	filtered := filterByAuthor(posts, viewerUsername)

	var s models.EngagementSummary
	s.TotalPosts = len(filtered)
	for _, p := range filtered {
		s.TotalViews += p.Views
		s.TotalLikes += p.Likes
		s.TotalComments += len(p.Comments)
	}
	if s.TotalPosts > 0 {
		s.AvgViews = roundDiv(s.TotalViews, s.TotalPosts)
		s.AvgLikes = roundDiv(s.TotalLikes, s.TotalPosts)
		s.AvgComments = roundDiv(s.TotalComments, s.TotalPosts)
	}
	return s
}

func roundDiv(a, b int) int {
	return (a + b/2) / b
}
