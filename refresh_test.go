package csscomplete

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// docsServer serves body with status and counts requests
func docsServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestRefresher(srvURL string, clock *fakeClock) *Refresher {
	sources := DefaultSources()
	sources[Tailwind] = Source{URL: srvURL, Pattern: sources[Tailwind].Pattern}
	sources[Bootstrap] = Source{URL: srvURL, Pattern: sources[Bootstrap].Pattern}

	return NewRefresher(RefreshOptions{
		Sources: sources,
		Now:     clock.Now,
		Timeout: 2 * time.Second,
	})
}

const tailwindPage = `<html><body>
<div class="flex items-center p-6"><p class="text-xl font-medium">Hi</p></div>
<div class="flex shadow-lg"></div>
</body></html>`

func TestRefresher_FetchesAndExtractsTailwind(t *testing.T) {
	srv, calls := docsServer(t, http.StatusOK, tailwindPage)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newTestRefresher(srv.URL, clock)

	got := r.Classes(context.Background(), Tailwind)

	assert.Equal(t, []string{"flex", "items-center", "p-6", "text-xl", "font-medium", "shadow-lg"}, got)
	assert.Equal(t, int32(1), calls.Load())

	cached, fetchedAt := r.Snapshot(Tailwind)
	assert.Equal(t, got, cached)
	assert.Equal(t, clock.now, fetchedAt)
}

func TestRefresher_WithinIntervalUsesCacheWithoutHTTP(t *testing.T) {
	srv, calls := docsServer(t, http.StatusOK, tailwindPage)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newTestRefresher(srv.URL, clock)

	first := r.Classes(context.Background(), Tailwind)
	require.Equal(t, int32(1), calls.Load())

	clock.Advance(59 * time.Minute)
	second := r.Classes(context.Background(), Tailwind)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load(), "no HTTP call inside the refresh interval")

	clock.Advance(2 * time.Minute)
	r.Classes(context.Background(), Tailwind)
	assert.Equal(t, int32(2), calls.Load(), "refetch after the interval elapsed")
}

func TestRefresher_WithinIntervalReturnsEmptyCache(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	srv, calls := docsServer(t, http.StatusOK, tailwindPage)
	r := newTestRefresher(srv.URL, clock)

	// Mark the tailwind cache fresh while leaving it empty.
	r.mu.Lock()
	r.lastFetch[Tailwind] = clock.now.Add(-time.Minute)
	r.mu.Unlock()

	got := r.Classes(context.Background(), Tailwind)
	assert.Empty(t, got)
	assert.Equal(t, int32(0), calls.Load())
}

func TestRefresher_FailureFallsBackToStatic(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: tailwindPage},
		{name: "not found", status: http.StatusNotFound, body: ""},
		{name: "no matches", status: http.StatusOK, body: "<html>nothing to see</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := docsServer(t, tt.status, tt.body)
			clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
			r := newTestRefresher(srv.URL, clock)

			got := r.Classes(context.Background(), Tailwind)
			assert.Equal(t, DefaultCatalog().Static(Tailwind), got)

			// Nothing was cached, so the next call tries again.
			cached, fetchedAt := r.Snapshot(Tailwind)
			assert.Empty(t, cached)
			assert.True(t, fetchedAt.IsZero())

			r.Classes(context.Background(), Tailwind)
			assert.Equal(t, int32(2), calls.Load())
		})
	}
}

func TestRefresher_TransportFailureFallsBackToStatic(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newTestRefresher(url, clock)

	assert.Equal(t, DefaultCatalog().Static(Bootstrap), r.Classes(context.Background(), Bootstrap))
}

func TestRefresher_FailureAfterSuccessReturnsStaticNotStale(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(tailwindPage))
	}))
	t.Cleanup(srv.Close)

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newTestRefresher(srv.URL, clock)

	fresh := r.Classes(context.Background(), Tailwind)
	require.Contains(t, fresh, "shadow-lg")

	fail.Store(true)
	clock.Advance(2 * time.Hour)

	assert.Equal(t, DefaultCatalog().Static(Tailwind), r.Classes(context.Background(), Tailwind))

	cached, _ := r.Snapshot(Tailwind)
	assert.Equal(t, fresh, cached, "stale cache is kept but not served")
}

func TestRefresher_FrameworksAreCachedIndependently(t *testing.T) {
	page := tailwindPage + `<style>.btn-outline { } .card-body { }</style>`
	srv, calls := docsServer(t, http.StatusOK, page)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newTestRefresher(srv.URL, clock)

	r.Classes(context.Background(), Tailwind)
	bs := r.Classes(context.Background(), Bootstrap)

	assert.Equal(t, int32(2), calls.Load())
	assert.Contains(t, bs, "btn-outline")
	assert.Contains(t, bs, "card-body")
}

func TestRefresher_ConcurrentCallsShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(tailwindPage))
	}))
	t.Cleanup(srv.Close)

	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newTestRefresher(srv.URL, clock)

	const callers = 10
	var ready, done sync.WaitGroup
	ready.Add(callers)
	done.Add(callers)
	results := make([][]string, callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer done.Done()
			ready.Done()
			results[i] = r.Classes(context.Background(), Tailwind)
		}(i)
	}

	ready.Wait()
	time.Sleep(100 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, got := range results {
		assert.Equal(t, []string{"flex", "items-center", "p-6", "text-xl", "font-medium", "shadow-lg"}, got)
	}
}

func TestRefresher_TruncatesOversizedPage(t *testing.T) {
	page := `<p class="early">` + strings.Repeat("x", MaxPageSize) + `<p class="late">`
	srv, calls := docsServer(t, http.StatusOK, page)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := newTestRefresher(srv.URL, clock)

	got := r.Classes(context.Background(), Tailwind)

	assert.Equal(t, []string{"early"}, got)
	assert.Equal(t, int32(1), calls.Load())

	_, fetchedAt := r.Snapshot(Tailwind)
	assert.Equal(t, clock.now, fetchedAt, "a truncated page is still a successful fetch")
}

func TestExtractClasses(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		pattern *regexp.Regexp
		want    []string
	}{
		{
			name:    "tailwind composite attribute",
			page:    `<p class="a b  c"></p><p class="b d"></p>`,
			pattern: tailwindPattern,
			want:    []string{"a", "b", "c", "d"},
		},
		{
			name:    "bootstrap selectors",
			page:    `.bg-primary { } .bg-secondary, .bg-primary { }`,
			pattern: bootstrapPattern,
			want:    []string{"bg-primary", "bg-secondary"},
		},
		{
			name:    "no matches",
			page:    `plain text`,
			pattern: tailwindPattern,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractClasses(tt.page, tt.pattern))
		})
	}
}
