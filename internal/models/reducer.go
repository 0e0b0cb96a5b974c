package models

// Reduce maps a state snapshot and an action to a new state snapshot. It is
// pure: the input state is never mutated, and every returned snapshot owns
// its memory. Actions referencing missing ids are silent no-ops; in a
// last-write-wins client store there is nothing to roll back.
func Reduce(state *AppState, action Action) *AppState {
	if state == nil {
		state = NewAppState()
	}

	switch a := action.(type) {
	case SetUser:
		next := state.Copy()
		next.User = a.User.Copy()
		return next

	case Logout:
		next := state.Copy()
		next.User = nil
		return next

	case AddBlogPost:
		next := state.Copy()
		next.BlogPosts = append(next.BlogPosts, a.Post.Copy())
		return next

	case UpdateBlogPost:
		i := state.FindPost(a.Post.ID)
		if i < 0 {
			return state
		}
		next := state.Copy()
		// Identity and engagement survive an edit: only the editable
		// fields come from the payload.
		p := &next.BlogPosts[i]
		p.Title = a.Post.Title
		p.Content = a.Post.Content
		p.Excerpt = a.Post.Excerpt
		p.Tags = append([]string(nil), a.Post.Tags...)
		p.UpdatedAt = a.Post.UpdatedAt
		return next

	case DeleteBlogPost:
		i := state.FindPost(a.PostID)
		if i < 0 {
			return state
		}
		next := state.Copy()
		next.BlogPosts = append(next.BlogPosts[:i], next.BlogPosts[i+1:]...)
		return next

	case AddBookmark:
		next := state.Copy()
		next.Bookmarks = append(next.Bookmarks, a.Bookmark)
		return next

	case RemoveBookmark:
		idx := -1
		for i := range state.Bookmarks {
			if state.Bookmarks[i].ID == a.BookmarkID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return state
		}
		next := state.Copy()
		next.Bookmarks = append(next.Bookmarks[:idx], next.Bookmarks[idx+1:]...)
		return next

	case IncrementViews:
		i := state.FindPost(a.PostID)
		if i < 0 {
			return state
		}
		next := state.Copy()
		next.BlogPosts[i].Views++
		return next

	case ToggleLike:
		i := state.FindPost(a.PostID)
		if i < 0 || a.UserID == "" {
			return state
		}
		next := state.Copy()
		p := &next.BlogPosts[i]
		if p.HasLike(a.UserID) {
			kept := p.UserLikes[:0]
			for _, id := range p.UserLikes {
				if id != a.UserID {
					kept = append(kept, id)
				}
			}
			p.UserLikes = kept
		} else {
			p.UserLikes = append(p.UserLikes, a.UserID)
		}
		// Derived counter: always equals len(userLikes).
		p.Likes = len(p.UserLikes)
		return next

	case ToggleBlogBookmark:
		i := state.FindPost(a.PostID)
		if i < 0 || a.UserID == "" {
			return state
		}
		next := state.Copy()
		p := &next.BlogPosts[i]
		if p.HasBookmark(a.UserID) {
			kept := p.UserBookmarks[:0]
			for _, id := range p.UserBookmarks {
				if id != a.UserID {
					kept = append(kept, id)
				}
			}
			p.UserBookmarks = kept
		} else {
			p.UserBookmarks = append(p.UserBookmarks, a.UserID)
		}
		return next

	case AddComment:
		i := state.FindPost(a.PostID)
		if i < 0 {
			return state
		}
		for _, c := range state.BlogPosts[i].Comments {
			if c.ID == a.Comment.ID {
				return state
			}
		}
		next := state.Copy()
		p := &next.BlogPosts[i]
		p.Comments = append(p.Comments, a.Comment)
		return next

	case SetNewsArticles:
		next := state.Copy()
		next.NewsArticles = append([]NewsArticle(nil), a.Articles...)
		return next

	case UpdateAnalytics:
		next := state.Copy()
		next.Analytics = a.Analytics.Copy()
		return next

	case UpdateNewsAnalytics:
		next := state.Copy()
		next.NewsAnalytics = a.Analytics.Copy()
		return next

	default:
		return state
	}
}
