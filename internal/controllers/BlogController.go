package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
	"github.com/km1000101/the-Editors-hub/internal/storage"
)

const excerptLength = 150

const anonymousAuthor = "Anonymous"

// BlogController implements the blog post surface: CRUD, engagement events
// and the draft buffer. Validation of title/content happens here, on the
// caller side of the reducer; the reducer itself only no-ops on missing ids.
type BlogController struct {
	logger providers.Logger
	store  services.StoreServiceInterface
	drafts *storage.DraftAutosaver
}

func NewBlogController(logger providers.Logger, store services.StoreServiceInterface, drafts *storage.DraftAutosaver) *BlogController {
	return &BlogController{logger: logger, store: store, drafts: drafts}
}

type postPayload struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	Tags    string `json:"tags"`
}

func (p *postPayload) valid() bool {
	return strings.TrimSpace(p.Title) != "" && strings.TrimSpace(p.Content) != ""
}

func splitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, t := range parts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func deriveExcerpt(excerpt, content string) string {
	if excerpt != "" {
		return excerpt
	}
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

func (bc *BlogController) author() string {
	if user := bc.store.User(); user != nil {
		return user.Username
	}
	return anonymousAuthor
}

func (bc *BlogController) decodePost(w http.ResponseWriter, r *http.Request) (*postPayload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload postPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil, false
	}
	return &payload, true
}

func (bc *BlogController) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bc.store.BlogPosts())
}

func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := bc.decodePost(w, r)
	if !ok {
		return
	}
	if !payload.valid() {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	post := models.BlogPost{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Title:     payload.Title,
		Content:   payload.Content,
		Excerpt:   deriveExcerpt(payload.Excerpt, payload.Content),
		Author:    bc.author(),
		CreatedAt: now,
		UpdatedAt: now,
		Comments:  []models.Comment{},
		Tags:      splitTags(payload.Tags),
		UserLikes: []string{},
	}

	bc.store.Dispatch(models.AddBlogPost{Post: post})
	// A successful submit invalidates the in-progress draft.
	if err := bc.drafts.Clear(); err != nil {
		bc.logger.Warnf(providers.TypePost, "Failed to clear draft: %s", err)
	}
	bc.logger.Infof(providers.TypePost, "Created blog post %s", post.ID)

	writeJSON(w, http.StatusCreated, post)
}

func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := bc.decodePost(w, r)
	if !ok {
		return
	}
	if payload.ID == "" || !payload.valid() {
		http.Error(w, "id, title and content are required", http.StatusBadRequest)
		return
	}

	bc.store.Dispatch(models.UpdateBlogPost{Post: models.BlogPost{
		ID:        payload.ID,
		Title:     payload.Title,
		Content:   payload.Content,
		Excerpt:   deriveExcerpt(payload.Excerpt, payload.Content),
		Tags:      splitTags(payload.Tags),
		UpdatedAt: time.Now(),
	}})
	if err := bc.drafts.Clear(); err != nil {
		bc.logger.Warnf(providers.TypePost, "Failed to clear draft: %s", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	bc.store.Dispatch(models.DeleteBlogPost{PostID: id})
	w.WriteHeader(http.StatusNoContent)
}

type postEventPayload struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (bc *BlogController) decodeEvent(w http.ResponseWriter, r *http.Request) (*postEventPayload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload postEventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return nil, false
	}
	return &payload, true
}

func (bc *BlogController) View(w http.ResponseWriter, r *http.Request) {
	payload, ok := bc.decodeEvent(w, r)
	if !ok {
		return
	}
	bc.store.Dispatch(models.IncrementViews{PostID: payload.ID})
	w.WriteHeader(http.StatusNoContent)
}

type likeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

func (bc *BlogController) Like(w http.ResponseWriter, r *http.Request) {
	user := bc.store.User()
	if user == nil {
		http.Error(w, "sign in to like a post", http.StatusUnauthorized)
		return
	}
	payload, ok := bc.decodeEvent(w, r)
	if !ok {
		return
	}

	bc.store.Dispatch(models.ToggleLike{PostID: payload.ID, UserID: user.ID})

	for _, p := range bc.store.BlogPosts() {
		if p.ID == payload.ID {
			writeJSON(w, http.StatusOK, likeResponse{Likes: p.Likes, Liked: p.HasLike(user.ID)})
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (bc *BlogController) Bookmark(w http.ResponseWriter, r *http.Request) {
	user := bc.store.User()
	if user == nil {
		http.Error(w, "sign in to bookmark a post", http.StatusUnauthorized)
		return
	}
	payload, ok := bc.decodeEvent(w, r)
	if !ok {
		return
	}
	bc.store.Dispatch(models.ToggleBlogBookmark{PostID: payload.ID, UserID: user.ID})
	w.WriteHeader(http.StatusNoContent)
}

func (bc *BlogController) Comment(w http.ResponseWriter, r *http.Request) {
	payload, ok := bc.decodeEvent(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		http.Error(w, "comment content is required", http.StatusBadRequest)
		return
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		Author:    bc.author(),
		Content:   payload.Content,
		CreatedAt: time.Now(),
	}
	bc.store.Dispatch(models.AddComment{PostID: payload.ID, Comment: comment})

	writeJSON(w, http.StatusCreated, comment)
}

func (bc *BlogController) DraftGet(w http.ResponseWriter, r *http.Request) {
	draft, ok := bc.drafts.Restore()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (bc *BlogController) DraftUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var draft models.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	bc.drafts.Update(draft)
	w.WriteHeader(http.StatusAccepted)
}

func (bc *BlogController) DraftClear(w http.ResponseWriter, r *http.Request) {
	if err := bc.drafts.Clear(); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
