package models

import "time"

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`
	Comments      []Comment `json:"comments"`
	Tags          []string  `json:"tags"`
	UserLikes     []string  `json:"userLikes"`
	UserBookmarks []string  `json:"userBookmarks,omitempty"`
}

// Copy returns a value copy with all nested slices duplicated, so the
// returned post shares no mutable memory with the receiver.
func (p BlogPost) Copy() BlogPost {
	c := p
	if p.Comments != nil {
		c.Comments = append([]Comment(nil), p.Comments...)
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.UserLikes != nil {
		c.UserLikes = append([]string(nil), p.UserLikes...)
	}
	if p.UserBookmarks != nil {
		c.UserBookmarks = append([]string(nil), p.UserBookmarks...)
	}
	return c
}

func (p BlogPost) HasLike(userID string) bool {
	for _, id := range p.UserLikes {
		if id == userID {
			return true
		}
	}
	return false
}

func (p BlogPost) HasBookmark(userID string) bool {
	for _, id := range p.UserBookmarks {
		if id == userID {
			return true
		}
	}
	return false
}

// Engagement is the ranking score used for the top-posts list.
func (p BlogPost) Engagement() int {
	return p.Views + p.Likes
}

func CopyPosts(posts []BlogPost) []BlogPost {
	if posts == nil {
		return nil
	}
	out := make([]BlogPost, len(posts))
	for i, p := range posts {
		out[i] = p.Copy()
	}
	return out
}
