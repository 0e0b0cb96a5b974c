package models

// Action is the closed set of state transitions understood by Reduce. The
// unexported marker keeps the union sealed to this package, so adding an
// action kind is a compile-time-visible change.
type Action interface {
	isAction()
}

// SetUser replaces the session user. A nil User clears the session.
type SetUser struct {
	User *User
}

// Logout clears the session user.
type Logout struct{}

// AddBlogPost appends a post to the collection.
type AddBlogPost struct {
	Post BlogPost
}

// UpdateBlogPost replaces the editable fields (title, content, excerpt,
// tags) of the post with the matching id. Identity and engagement fields
// are preserved from the existing record.
type UpdateBlogPost struct {
	Post BlogPost
}

// DeleteBlogPost removes the post with the given id.
type DeleteBlogPost struct {
	PostID string
}

// AddBookmark appends a bookmark. No uniqueness is enforced here; the
// caller checks for an existing bookmark per article to emulate a toggle.
type AddBookmark struct {
	Bookmark Bookmark
}

// RemoveBookmark removes the bookmark with the given bookmark id.
type RemoveBookmark struct {
	BookmarkID string
}

// IncrementViews adds exactly one view to the post with the given id.
type IncrementViews struct {
	PostID string
}

// ToggleLike adds or removes the user's like on a post, keeping the likes
// counter equal to len(userLikes).
type ToggleLike struct {
	PostID string
	UserID string
}

// ToggleBlogBookmark adds or removes the user's bookmark flag on a post.
type ToggleBlogBookmark struct {
	PostID string
	UserID string
}

// AddComment appends a comment to the post's ordered comment sequence.
type AddComment struct {
	PostID  string
	Comment Comment
}

// SetNewsArticles replaces the cached news article slice.
type SetNewsArticles struct {
	Articles []NewsArticle
}

// UpdateAnalytics replaces the cached blog analytics slice.
type UpdateAnalytics struct {
	Analytics AnalyticsData
}

// UpdateNewsAnalytics replaces the cached news analytics slice.
type UpdateNewsAnalytics struct {
	Analytics AnalyticsData
}

func (SetUser) isAction()             {}
func (Logout) isAction()              {}
func (AddBlogPost) isAction()         {}
func (UpdateBlogPost) isAction()      {}
func (DeleteBlogPost) isAction()      {}
func (AddBookmark) isAction()         {}
func (RemoveBookmark) isAction()      {}
func (IncrementViews) isAction()      {}
func (ToggleLike) isAction()          {}
func (ToggleBlogBookmark) isAction()  {}
func (AddComment) isAction()          {}
func (SetNewsArticles) isAction()     {}
func (UpdateAnalytics) isAction()     {}
func (UpdateNewsAnalytics) isAction() {}
