package articles

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/degennews/web/logger"
	"github.com/degennews/web/status"
)

// FreshnessWindow is how long a successful fetch keeps serving from cache.
const FreshnessWindow = 24 * time.Hour

// RowFetcher reads the raw article rows from the remote spreadsheet.
type RowFetcher interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// Repository owns the article cache and the mapping from spreadsheet rows
// to Article records. One instance is shared process-wide; concurrent
// stale reads are collapsed into a single remote fetch.
type Repository struct {
	fetcher RowFetcher
	log     logger.Logger

	mu        sync.RWMutex
	cached    []Article
	lastFetch time.Time

	group singleflight.Group
	now   func() time.Time
}

func NewRepository(fetcher RowFetcher, log logger.Logger) *Repository {
	return &Repository{
		fetcher: fetcher,
		log:     log,
		now:     time.Now,
	}
}

// All returns every article sorted by date descending. Within the
// freshness window the cached set is returned without a remote call;
// force bypasses the window. The returned slice is shared: callers must
// not mutate it.
func (r *Repository) All(ctx context.Context, force bool) ([]Article, error) {
	if !force {
		if cached, ok := r.fresh(); ok {
			cacheHits.Inc()
			r.log.Debug("serving %d articles from cache", len(cached))
			return cached, nil
		}
	}

	// The fetch is detached from the initiating request's context: other
	// requests join the same singleflight call, and the first caller
	// hanging up must not cancel the fetch out from under them.
	v, err, shared := r.group.Do("articles", func() (any, error) {
		return r.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.log.Debug("joined an in-flight article fetch")
	}
	return v.([]Article), nil
}

// ByCategory filters All by a case-insensitive substring match on the
// article category.
func (r *Repository) ByCategory(ctx context.Context, category string, force bool) ([]Article, error) {
	all, err := r.All(ctx, force)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(category)
	var matched []Article
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Category), needle) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// ByURL looks up an article by slug. The argument may be a bare slug or a
// path whose final segment is the slug. When several articles share a slug
// the first in date-descending order wins; the sheet does not enforce slug
// uniqueness.
func (r *Repository) ByURL(ctx context.Context, url string, force bool) (Article, error) {
	all, err := r.All(ctx, force)
	if err != nil {
		return Article{}, err
	}

	slug := SlugOf(url)
	for _, a := range all {
		if a.Slug() == slug {
			return a, nil
		}
	}
	return Article{}, status.ErrArticleNotFound
}

// Categories returns the unique categories in first-seen (date-descending)
// order.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	all, err := r.All(ctx, false)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(all))
	var categories []string
	for _, a := range all {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		categories = append(categories, a.Category)
	}
	return categories, nil
}

// ClearCache resets the cache so the next read hits the remote source.
func (r *Repository) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.lastFetch = time.Time{}
	r.log.Info("article cache cleared")
}

// Warm populates the cache once, for startup.
func (r *Repository) Warm(ctx context.Context) (int, error) {
	all, err := r.All(ctx, false)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *Repository) fresh() ([]Article, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.cached) > 0 && r.now().Sub(r.lastFetch) < FreshnessWindow {
		return r.cached, true
	}
	return nil, false
}

// refresh fetches, maps, sorts and stores a new article set. On any
// failure the previous cache is left untouched.
func (r *Repository) refresh(ctx context.Context) ([]Article, error) {
	fetchTotal.Inc()
	start := r.now()

	rows, err := r.fetcher.FetchRows(ctx)
	if err != nil {
		fetchErrors.Inc()
		r.log.Error("fetching article rows: %s", err.Error())
		return nil, fmt.Errorf("%w: %w", status.ErrFetchFailed, err)
	}

	now := r.now()
	rows = dropHeaderRow(rows)
	mapped := make([]Article, 0, len(rows))
	for i, row := range rows {
		mapped = append(mapped, fromRow(row, i, now))
	}

	sort.SliceStable(mapped, func(i, j int) bool {
		return parseDate(mapped[i].Date, now).After(parseDate(mapped[j].Date, now))
	})

	r.mu.Lock()
	r.cached = mapped
	r.lastFetch = now
	r.mu.Unlock()

	fetchDuration.Observe(r.now().Sub(start).Seconds())
	r.log.Info("fetched %d articles from the spreadsheet", len(mapped))
	return mapped, nil
}
