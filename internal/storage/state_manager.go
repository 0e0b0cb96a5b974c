package storage

import (
	json "github.com/goccy/go-json"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
)

// Storage keys, one per persisted state slice.
const (
	KeyUser      = "user"
	KeyPosts     = "blogPosts"
	KeyBookmarks = "bookmarks"
	KeyDraft     = "blogDrafts"
)

// StateManager mirrors the persisted state slices between the store and the
// key-value store. Derived slices (analytics, news articles) are never
// written: they are recomputed from their sources.
type StateManager struct {
	kv     KeyValueStore
	logger providers.Logger
}

func NewStateManager(kv KeyValueStore, logger providers.Logger) *StateManager {
	return &StateManager{kv: kv, logger: logger}
}

// Restore assembles a startup state from storage. A missing or corrupt
// slice falls back to its empty default; startup never fails on bad data.
func (m *StateManager) Restore() *models.AppState {
	state := models.NewAppState()

	var user models.User
	if m.loadSlice(KeyUser, &user) {
		state.User = &user
	}

	var posts []models.BlogPost
	if m.loadSlice(KeyPosts, &posts) {
		state.BlogPosts = posts
	}

	var bookmarks []models.Bookmark
	if m.loadSlice(KeyBookmarks, &bookmarks) {
		state.Bookmarks = bookmarks
	}

	return state
}

func (m *StateManager) loadSlice(key string, dst any) bool {
	data, ok, err := m.kv.Load(key)
	if err != nil {
		m.logger.Warnf(providers.TypeApp, "Failed to load %q, using empty default: %s", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		m.logger.Warnf(providers.TypeApp, "Corrupt %q slice, using empty default: %s", key, err)
		return false
	}
	return true
}

// Mirror writes the persisted slices of the given snapshot. A nil user
// removes the session key so a logout survives a restart.
func (m *StateManager) Mirror(state *models.AppState) error {
	if state == nil {
		return nil
	}

	if state.User == nil {
		if err := m.kv.Delete(KeyUser); err != nil {
			return err
		}
	} else if err := m.saveSlice(KeyUser, state.User); err != nil {
		return err
	}

	if err := m.saveSlice(KeyPosts, state.BlogPosts); err != nil {
		return err
	}
	return m.saveSlice(KeyBookmarks, state.Bookmarks)
}

func (m *StateManager) saveSlice(key string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return m.kv.Save(key, data)
}
