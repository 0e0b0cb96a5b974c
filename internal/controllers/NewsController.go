package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/news"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
)

// NewsController serves the cached news articles and the bookmark toggle.
// The upstream fetch lives in the news service; a failing upstream never
// touches domain state.
type NewsController struct {
	logger  providers.Logger
	store   services.StoreServiceInterface
	service *news.Service
}

func NewNewsController(logger providers.Logger, store services.StoreServiceInterface, service *news.Service) *NewsController {
	return &NewsController{logger: logger, store: store, service: service}
}

func (nc *NewsController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	articles := nc.service.Filter(q.Get("category"), q.Get("q"))

	if limit := cast.ToInt(q.Get("limit")); limit > 0 && limit < len(articles) {
		articles = articles[:limit]
	}
	writeJSON(w, http.StatusOK, articles)
}

type moreResponse struct {
	Added     int  `json:"added"`
	Exhausted bool `json:"exhausted"`
}

// More loads the next page, in strictly increasing page order. Requests
// arriving while a load is outstanding are rejected rather than queued.
func (nc *NewsController) More(w http.ResponseWriter, r *http.Request) {
	added, err := nc.service.Pager().LoadNext(r.Context())
	if err != nil {
		if errors.Is(err, news.ErrBusy) {
			http.Error(w, "page load in progress", http.StatusTooManyRequests)
			return
		}
		nc.logger.Errorf(providers.TypeGet, "News page load failed: %s", err)
		http.Error(w, "news source unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, moreResponse{Added: added, Exhausted: nc.service.Pager().Exhausted()})
}

func (nc *NewsController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := nc.service.Refresh(r.Context()); err != nil {
		nc.logger.Errorf(providers.TypePost, "News refresh failed: %s", err)
		http.Error(w, "news source unavailable", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (nc *NewsController) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, news.Categories)
}

func (nc *NewsController) Bookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nc.store.Bookmarks())
}

type bookmarkTogglePayload struct {
	ArticleID string `json:"articleId"`
}

type bookmarkToggleResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

// BookmarkToggle emulates the toggle on top of the reducer's plain
// add/remove: the existing-bookmark check happens here, keyed by article
// id only.
func (nc *NewsController) BookmarkToggle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload bookmarkTogglePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ArticleID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if existing, ok := models.FindBookmarkByArticle(nc.store.Bookmarks(), payload.ArticleID); ok {
		nc.store.Dispatch(models.RemoveBookmark{BookmarkID: existing.ID})
		writeJSON(w, http.StatusOK, bookmarkToggleResponse{Bookmarked: false})
		return
	}

	userID := "anonymous"
	if user := nc.store.User(); user != nil {
		userID = user.ID
	}
	now := time.Now()
	nc.store.Dispatch(models.AddBookmark{Bookmark: models.Bookmark{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		ArticleID: payload.ArticleID,
		UserID:    userID,
		CreatedAt: now,
	}})
	writeJSON(w, http.StatusOK, bookmarkToggleResponse{Bookmarked: true})
}
