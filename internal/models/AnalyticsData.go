package models

// TimeSeriesPoint is one day bucket of a 30-day engagement series.
// Date is an ISO calendar day (YYYY-MM-DD).
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

type TopPost struct {
	Title string `json:"title"`
	Views int    `json:"views"`
	Likes int    `json:"likes"`
}

// AnalyticsData is fully derived from a post collection; it is recomputed on
// demand and never persisted.
type AnalyticsData struct {
	PostViews []TimeSeriesPoint `json:"postViews"`
	PostLikes []TimeSeriesPoint `json:"postLikes"`
	Comments  []TimeSeriesPoint `json:"comments"`
	TopPosts  []TopPost         `json:"topPosts"`
}

func (a AnalyticsData) Copy() AnalyticsData {
	c := a
	if a.PostViews != nil {
		c.PostViews = append([]TimeSeriesPoint(nil), a.PostViews...)
	}
	if a.PostLikes != nil {
		c.PostLikes = append([]TimeSeriesPoint(nil), a.PostLikes...)
	}
	if a.Comments != nil {
		c.Comments = append([]TimeSeriesPoint(nil), a.Comments...)
	}
	if a.TopPosts != nil {
		c.TopPosts = append([]TopPost(nil), a.TopPosts...)
	}
	return c
}

// EngagementSummary backs the dashboard tiles. Totals are straight sums over
// the post collection, independent of the bucketed series.
type EngagementSummary struct {
	TotalViews    int `json:"totalViews"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
	TotalPosts    int `json:"totalPosts"`
	AvgViews      int `json:"avgViews"`
	AvgLikes      int `json:"avgLikes"`
	AvgComments   int `json:"avgComments"`
}
