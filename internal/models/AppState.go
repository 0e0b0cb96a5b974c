package models

// AppState is the single state snapshot owned by the store service. All
// mutation flows through Reduce; everything handed out of the store is a
// deep copy.
type AppState struct {
	User          *User         `json:"user"`
	BlogPosts     []BlogPost    `json:"blogPosts"`
	Bookmarks     []Bookmark    `json:"bookmarks"`
	NewsArticles  []NewsArticle `json:"newsArticles"`
	Analytics     AnalyticsData `json:"analytics"`
	NewsAnalytics AnalyticsData `json:"newsAnalytics"`
}

func NewAppState() *AppState {
	return &AppState{
		BlogPosts:    make([]BlogPost, 0),
		Bookmarks:    make([]Bookmark, 0),
		NewsArticles: make([]NewsArticle, 0),
	}
}

func (s *AppState) Copy() *AppState {
	if s == nil {
		return nil
	}
	c := &AppState{
		User:          s.User.Copy(),
		BlogPosts:     CopyPosts(s.BlogPosts),
		Analytics:     s.Analytics.Copy(),
		NewsAnalytics: s.NewsAnalytics.Copy(),
	}
	if s.Bookmarks != nil {
		c.Bookmarks = append([]Bookmark(nil), s.Bookmarks...)
	}
	if s.NewsArticles != nil {
		c.NewsArticles = append([]NewsArticle(nil), s.NewsArticles...)
	}
	return c
}

// FindPost returns the index of the post with the given id, or -1.
func (s *AppState) FindPost(id string) int {
	for i := range s.BlogPosts {
		if s.BlogPosts[i].ID == id {
			return i
		}
	}
	return -1
}
