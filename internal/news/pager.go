package news

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/services"
)

// ErrBusy is returned when a page load is requested while a previous one is
// still outstanding.
var ErrBusy = errors.New("news: page load already in progress")

// Pager appends source pages to the store's article slice in strictly
// increasing page order. A busy flag rejects overlapping loads and an
// exhausted flag stops requests once the source runs dry.
type Pager struct {
	source SourceInterface
	store  services.StoreServiceInterface

	busy      atomic.Bool
	exhausted atomic.Bool

	mu       sync.Mutex
	category string
	search   string
	page     int
}

func NewPager(source SourceInterface, store services.StoreServiceInterface) *Pager {
	return &Pager{source: source, store: store}
}

// Reset rewinds the pager to a fresh query. The next LoadNext fetches
// page 1 and replaces the stored articles instead of appending.
func (p *Pager) Reset(category, search string) {
	p.mu.Lock()
	p.category = category
	p.search = search
	p.page = 0
	p.mu.Unlock()
	p.exhausted.Store(false)
}

// Exhausted reports whether the source has run out of pages for the
// current query.
func (p *Pager) Exhausted() bool {
	return p.exhausted.Load()
}

// LoadNext fetches the next page and appends it to the store. It returns
// the number of appended articles; zero with a nil error means exhausted.
func (p *Pager) LoadNext(ctx context.Context) (int, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return 0, ErrBusy
	}
	defer p.busy.Store(false)

	if p.exhausted.Load() {
		return 0, nil
	}

	p.mu.Lock()
	q := Query{Category: p.category, SearchTerm: p.search, Page: p.page + 1}
	p.mu.Unlock()

	articles, err := p.source.Fetch(ctx, q)
	if err != nil {
		// The failed page will be retried; ordering is preserved
		// because the page counter only advances on success.
		return 0, err
	}
	if len(articles) == 0 {
		p.exhausted.Store(true)
		return 0, nil
	}

	var merged []models.NewsArticle
	if q.Page > 1 {
		merged = p.store.NewsArticles()
	}
	merged = append(merged, articles...)
	p.store.Dispatch(models.SetNewsArticles{Articles: merged})

	p.mu.Lock()
	p.page = q.Page
	p.mu.Unlock()
	return len(articles), nil
}

// filterArticles applies the category and search-term filters the UI
// exposes. Matching is case-insensitive over title and description.
func filterArticles(articles []models.NewsArticle, q Query) []models.NewsArticle {
	out := make([]models.NewsArticle, 0, len(articles))
	term := strings.ToLower(q.SearchTerm)
	for _, a := range articles {
		if q.Category != "" && q.Category != "all" && a.Category != "all" && a.Category != q.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Description), term) {
			continue
		}
		out = append(out, a)
	}
	return out
}
