package analytics

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km1000101/the-Editors-hub/internal/models"
)

var testNow = time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

func post(id string, createdDaysAgo, views, likes int) models.BlogPost {
	return models.BlogPost{
		ID:        id,
		Title:     "Post " + id,
		Author:    "alice",
		CreatedAt: testNow.AddDate(0, 0, -createdDaysAgo),
		Views:     views,
		Likes:     likes,
	}
}

func seriesTotal(series []models.TimeSeriesPoint) int {
	total := 0
	for _, p := range series {
		total += p.Value
	}
	return total
}

func TestDayKeys_WindowShape(t *testing.T) {
	keys := DayKeys(testNow)

	require.Len(t, keys, WindowDays)
	assert.Equal(t, "2026-07-31", keys[0])
	assert.Equal(t, "2026-08-29", keys[WindowDays-1])

	// Consecutive calendar days, oldest first
	for i := 1; i < len(keys); i++ {
		prev, _ := time.Parse("2006-01-02", keys[i-1])
		cur, _ := time.Parse("2006-01-02", keys[i])
		assert.Equal(t, prev.AddDate(0, 0, 1), cur)
	}
}

func TestAggregate_EmptyPosts(t *testing.T) {
	data := Aggregate(nil, testNow, "")

	require.Len(t, data.PostViews, WindowDays)
	require.Len(t, data.PostLikes, WindowDays)
	require.Len(t, data.Comments, WindowDays)
	assert.Empty(t, data.TopPosts)
	assert.Equal(t, 0, seriesTotal(data.PostViews))
	assert.Equal(t, 0, seriesTotal(data.PostLikes))
}

func TestAggregate_Deterministic(t *testing.T) {
	posts := []models.BlogPost{
		post("1", 5, 42, 7),
		post("2", 40, 100, 3),
		post("3", 0, 9, 1),
	}

	first := Aggregate(posts, testNow, "")
	second := Aggregate(posts, testNow, "")

	assert.Equal(t, first, second)
}

func TestAggregate_ConservesCounters(t *testing.T) {
	posts := []models.BlogPost{post("1", 9, 47, 13)}

	data := Aggregate(posts, testNow, "")

	assert.Equal(t, 47, seriesTotal(data.PostViews))
	assert.Equal(t, 13, seriesTotal(data.PostLikes))
}

func TestAggregate_EvenSpreadWithRemainderOnRecentDays(t *testing.T) {
	// Created 9 days ago -> 10 buckets. 47 views = 4 per day + 7 extra
	// going to the 7 most recent days.
	posts := []models.BlogPost{post("1", 9, 47, 0)}

	data := Aggregate(posts, testNow, "")

	for i := 0; i < WindowDays-10; i++ {
		assert.Equal(t, 0, data.PostViews[i].Value)
	}
	for i := WindowDays - 10; i < WindowDays-7; i++ {
		assert.Equal(t, 4, data.PostViews[i].Value)
	}
	for i := WindowDays - 7; i < WindowDays; i++ {
		assert.Equal(t, 5, data.PostViews[i].Value)
	}
}

func TestAggregate_PostCreatedTodayLandsInLastBucket(t *testing.T) {
	posts := []models.BlogPost{post("1", 0, 10, 3)}

	data := Aggregate(posts, testNow, "")

	assert.Equal(t, 10, data.PostViews[WindowDays-1].Value)
	assert.Equal(t, 3, data.PostLikes[WindowDays-1].Value)
	assert.Equal(t, 0, seriesTotal(data.PostViews[:WindowDays-1]))
}

func TestAggregate_OldPostSpreadsOverFullWindow(t *testing.T) {
	// Created well before the window: the effective start clamps to the
	// window's first day, so the counters spread over all 30 buckets.
	posts := []models.BlogPost{post("1", 120, 60, 0)}

	data := Aggregate(posts, testNow, "")

	assert.Equal(t, 60, seriesTotal(data.PostViews))
	for i := 0; i < WindowDays; i++ {
		assert.Equal(t, 2, data.PostViews[i].Value)
	}
}

func TestAggregate_CommentsBucketedByOwnDay(t *testing.T) {
	p := post("1", 10, 0, 0)
	p.Comments = []models.Comment{
		{ID: "c1", CreatedAt: testNow.AddDate(0, 0, -2)},
		{ID: "c2", CreatedAt: testNow.AddDate(0, 0, -2)},
		{ID: "c3", CreatedAt: testNow},
		{ID: "c4", CreatedAt: testNow.AddDate(0, 0, -45)}, // outside the window
	}

	data := Aggregate([]models.BlogPost{p}, testNow, "")

	assert.Equal(t, 3, seriesTotal(data.Comments))
	assert.Equal(t, 2, data.Comments[WindowDays-3].Value)
	assert.Equal(t, 1, data.Comments[WindowDays-1].Value)
}

func TestAggregate_FiltersByAuthor(t *testing.T) {
	posts := []models.BlogPost{
		post("1", 0, 10, 0),
		{ID: "2", Title: "Other", Author: "bob", CreatedAt: testNow, Views: 99},
	}

	mine := Aggregate(posts, testNow, "alice")
	assert.Equal(t, 10, seriesTotal(mine.PostViews))
	require.Len(t, mine.TopPosts, 1)
	assert.Equal(t, "Post 1", mine.TopPosts[0].Title)

	everyone := Aggregate(posts, testNow, "")
	assert.Equal(t, 109, seriesTotal(everyone.PostViews))
	assert.Len(t, everyone.TopPosts, 2)
}

func TestTopPosts_RankedByEngagementStable(t *testing.T) {
	posts := make([]models.BlogPost, 0, 7)
	for i := 1; i <= 7; i++ {
		p := post(fmt.Sprintf("%d", i), 0, 10, 0)
		if i == 3 || i == 4 {
			// Tie on engagement: original order must survive
			p.Views = 50
		}
		posts = append(posts, p)
	}

	data := Aggregate(posts, testNow, "")

	require.Len(t, data.TopPosts, 5)
	assert.Equal(t, "Post 3", data.TopPosts[0].Title)
	assert.Equal(t, "Post 4", data.TopPosts[1].Title)
	assert.Equal(t, "Post 1", data.TopPosts[2].Title)
	assert.Equal(t, "Post 2", data.TopPosts[3].Title)
	assert.Equal(t, "Post 5", data.TopPosts[4].Title)
}

func TestTopPosts_TitleTruncation(t *testing.T) {
	long := post("1", 0, 10, 0)
	long.Title = "This title is far longer than thirty characters in total"
	short := post("2", 0, 5, 0)
	short.Title = "Short title"

	data := Aggregate([]models.BlogPost{long, short}, testNow, "")

	require.Len(t, data.TopPosts, 2)
	assert.Equal(t, "This title is far longer than ...", data.TopPosts[0].Title)
	assert.Len(t, []rune(data.TopPosts[0].Title), titleMaxLen+3)
	assert.Equal(t, "Short title", data.TopPosts[1].Title)
}

func TestTruncateTitle_RuneSafe(t *testing.T) {
	title := strings.Repeat("α", titleMaxLen+5)
	got := truncateTitle(title)
	assert.Equal(t, string([]rune(title)[:titleMaxLen])+"...", got)
}

func TestSummarize_TotalsAndAverages(t *testing.T) {
	p1 := post("1", 0, 10, 4)
	p1.Comments = []models.Comment{{ID: "c1"}, {ID: "c2"}}
	p2 := post("2", 3, 5, 1)

	s := Summarize([]models.BlogPost{p1, p2}, "")

	assert.Equal(t, 15, s.TotalViews)
	assert.Equal(t, 5, s.TotalLikes)
	assert.Equal(t, 2, s.TotalComments)
	assert.Equal(t, 2, s.TotalPosts)
	assert.Equal(t, 8, s.AvgViews) // 15/2 rounded
	assert.Equal(t, 3, s.AvgLikes) // 5/2 rounded
	assert.Equal(t, 1, s.AvgComments)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, "")
	assert.Equal(t, models.EngagementSummary{}, s)
}

func TestSummarize_AgreesWithAggregateTotals(t *testing.T) {
	posts := []models.BlogPost{
		post("1", 2, 17, 4),
		post("2", 12, 33, 9),
	}

	s := Summarize(posts, "")
	data := Aggregate(posts, testNow, "")

	assert.Equal(t, s.TotalViews, seriesTotal(data.PostViews))
	assert.Equal(t, s.TotalLikes, seriesTotal(data.PostLikes))
}
