package services

import (
	"sync"

	"github.com/km1000101/the-Editors-hub/internal/models"
)

type StoreServiceInterface interface {
	Dispatch(action models.Action)
	State() *models.AppState
	User() *models.User
	BlogPosts() []models.BlogPost
	Bookmarks() []models.Bookmark
	NewsArticles() []models.NewsArticle
	Replace(state *models.AppState)
	Subscribe(fn func(*models.AppState))
	Version() uint64
}

// StoreService is the single-writer holder of the application state.
// Every mutation goes through Dispatch, which applies the pure reducer
// under the write lock and then notifies subscribers with a detached copy,
// so a subscriber can dispatch again without deadlocking.
type StoreService struct {
	mu      sync.RWMutex
	state   *models.AppState
	version uint64

	subMu       sync.Mutex
	subscribers []func(*models.AppState)
}

func NewStoreService() StoreServiceInterface {
	return &StoreService{state: models.NewAppState()}
}

func (s *StoreService) Dispatch(action models.Action) {
	s.mu.Lock()
	next := models.Reduce(s.state, action)
	if next != s.state {
		s.state = next
		s.version++
	}
	snapshot := s.state.Copy()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *StoreService) notify(snapshot *models.AppState) {
	s.subMu.Lock()
	subs := make([]func(*models.AppState), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Subscribe registers a callback invoked after every dispatch with a deep
// copy of the new state. Callbacks run synchronously on the dispatching
// goroutine, mirroring the UI event-loop discipline.
func (s *StoreService) Subscribe(fn func(*models.AppState)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *StoreService) State() *models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Copy()
}

func (s *StoreService) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User.Copy()
}

func (s *StoreService) BlogPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CopyPosts(s.state.BlogPosts)
}

func (s *StoreService) Bookmarks() []models.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Bookmark(nil), s.state.Bookmarks...)
}

func (s *StoreService) NewsArticles() []models.NewsArticle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.NewsArticle(nil), s.state.NewsArticles...)
}

// Replace swaps in a restored state wholesale. Used at startup; it does not
// notify subscribers, so restoring never triggers a persistence write-back.
func (s *StoreService) Replace(state *models.AppState) {
	if state == nil {
		state = models.NewAppState()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Copy()
	s.version++
}

// Version increases on every effective state change. Response caches key
// their entries by it for cheap invalidation.
func (s *StoreService) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
