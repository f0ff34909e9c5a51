package articles

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degennews/web/status"
)

type nopLogger struct{}

func (nopLogger) Debug(format string, args ...any) {}
func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

type fakeFetcher struct {
	mu    sync.Mutex
	rows  [][]string
	err   error
	calls int
}

func (f *fakeFetcher) FetchRows(ctx context.Context) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.rows, f.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeFetcher) set(rows [][]string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = rows
	f.err = err
}

func sampleRows() [][]string {
	return [][]string{
		{"1", "Bridge Exploit Drains $2M", "Funds moved fast. Auditors missed it.", "DeFi Security", "hack, bridge", "bridge-exploit", "2025-03-10"},
		{"2", "Whale Moves 10k ETH", "A quiet wallet woke up. Exchanges noticed.", "Whales", "eth", "", "2025-06-01"},
		{"3", "Meme Season Returns", "Volume is back. Caution is not.", "Memes", "", "meme-season", "2025-01-20"},
	}
}

func newTestRepository(f *fakeFetcher) *Repository {
	return NewRepository(f, nopLogger{})
}

func TestRepositoryCachesWithinWindow(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)
	ctx := context.Background()

	first, err := repo.All(ctx, false)
	require.NoError(t, err)
	second, err := repo.All(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, 1, f.callCount())
	assert.Equal(t, first, second)
}

func TestRepositoryForceBypassesCache(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)
	ctx := context.Background()

	_, err := repo.All(ctx, false)
	require.NoError(t, err)
	_, err = repo.All(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, 2, f.callCount())
}

func TestRepositoryRefetchesAfterWindow(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)
	ctx := context.Background()

	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	current := base
	repo.now = func() time.Time { return current }

	_, err := repo.All(ctx, false)
	require.NoError(t, err)

	current = base.Add(FreshnessWindow - time.Minute)
	_, err = repo.All(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, f.callCount())

	current = base.Add(FreshnessWindow + time.Minute)
	_, err = repo.All(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, f.callCount())
}

func TestRepositorySortsByDateDescending(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)

	all, err := repo.All(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "Whale Moves 10k ETH", all[0].Title)
	assert.Equal(t, "Bridge Exploit Drains $2M", all[1].Title)
	assert.Equal(t, "Meme Season Returns", all[2].Title)
}

func TestRepositoryDropsHeaderRow(t *testing.T) {
	rows := append([][]string{{"ID", "Article Name", "Content", "Category", "Tags", "Slug", "Date"}}, sampleRows()...)
	f := &fakeFetcher{rows: rows}
	repo := newTestRepository(f)

	all, err := repo.All(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, a := range all {
		assert.NotEqual(t, "Article Name", a.Title)
	}
}

func TestRepositoryMappingDefaults(t *testing.T) {
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	f := &fakeFetcher{rows: [][]string{
		{"", "Hack: $2M Bridge Exploit!", "Body text."},
	}}
	repo := newTestRepository(f)
	repo.now = func() time.Time { return base }

	all, err := repo.All(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	a := all[0]
	assert.Equal(t, "article-0", a.ID)
	assert.Equal(t, "hack-2m-bridge-exploit", a.Slug())
	assert.Equal(t, "2025-07-01", a.Date)
	assert.Nil(t, a.Tags)
}

func TestRepositoryByCategoryIsCaseInsensitive(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)

	matched, err := repo.ByCategory(context.Background(), "defi", false)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "DeFi Security", matched[0].Category)
}

func TestRepositoryByURL(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)
	ctx := context.Background()

	bySlug, err := repo.ByURL(ctx, "bridge-exploit", false)
	require.NoError(t, err)
	assert.Equal(t, "Bridge Exploit Drains $2M", bySlug.Title)

	byPath, err := repo.ByURL(ctx, "articles/bridge-exploit", false)
	require.NoError(t, err)
	assert.Equal(t, bySlug.ID, byPath.ID)

	_, err = repo.ByURL(ctx, "no-such-slug", false)
	assert.ErrorIs(t, err, status.ErrArticleNotFound)
}

func TestRepositoryCategoriesUniqueFirstSeen(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, []string{"4", "Another Whale Alert", "Text.", "Whales", "", "", "2025-05-05"})
	f := &fakeFetcher{rows: rows}
	repo := newTestRepository(f)

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Whales", "DeFi Security", "Memes"}, categories)
}

func TestRepositoryClearCache(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)
	ctx := context.Background()

	_, err := repo.All(ctx, false)
	require.NoError(t, err)

	repo.ClearCache()

	_, err = repo.All(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, f.callCount())
}

func TestRepositoryFetchErrorKeepsCache(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)
	ctx := context.Background()

	_, err := repo.All(ctx, false)
	require.NoError(t, err)

	f.set(nil, errors.New("quota exceeded"))

	_, err = repo.All(ctx, true)
	assert.ErrorIs(t, err, status.ErrFetchFailed)

	cached, err := repo.All(ctx, false)
	require.NoError(t, err)
	assert.Len(t, cached, 3)
}

func TestRepositoryFetchErrorPreservesCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	f := &fakeFetcher{err: cause}
	repo := newTestRepository(f)

	_, err := repo.All(context.Background(), false)
	assert.ErrorIs(t, err, status.ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
}

type ctxSensitiveFetcher struct {
	rows [][]string
}

func (f *ctxSensitiveFetcher) FetchRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.rows, nil
}

func TestRepositoryFetchOutlivesCallerCancellation(t *testing.T) {
	repo := NewRepository(&ctxSensitiveFetcher{rows: sampleRows()}, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	all, err := repo.All(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepositoryWarm(t *testing.T) {
	f := &fakeFetcher{rows: sampleRows()}
	repo := newTestRepository(f)

	n, err := repo.Warm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, f.callCount())
}
