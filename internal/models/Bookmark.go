package models

import "time"

// Bookmark marks an external news article as saved. Uniqueness is keyed by
// ArticleID only; UserID is carried for future per-user scoping but is not
// used for deduplication.
type Bookmark struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FindBookmarkByArticle returns the first bookmark for the given article id.
func FindBookmarkByArticle(bookmarks []Bookmark, articleID string) (Bookmark, bool) {
	for _, b := range bookmarks {
		if b.ArticleID == articleID {
			return b, true
		}
	}
	return Bookmark{}, false
}
