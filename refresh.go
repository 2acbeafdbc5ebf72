package csscomplete

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yacobolo/csscomplete/internal/log"
)

const (
	// DefaultRefreshInterval is the minimum age of a successful fetch
	// before the documentation page is requested again.
	DefaultRefreshInterval = time.Hour

	// DefaultFetchTimeout bounds a single documentation request.
	DefaultFetchTimeout = 10 * time.Second

	// MaxPageSize caps how much of a documentation page is read.
	MaxPageSize = 10 * 1024 * 1024

	// Documentation pages class names are harvested from
	DefaultTailwindURL  = "https://tailwindcss.com/docs/utility-first"
	DefaultBootstrapURL = "https://getbootstrap.com/docs/5.1/utilities/background/"
)

// Source describes where a framework's class list is fetched from and how
// class names are pulled out of the page.
type Source struct {
	URL     string
	Pattern *regexp.Regexp // first capture group holds one or more space-separated classes
}

var (
	// class="..." attributes in the Tailwind docs markup
	tailwindPattern = regexp.MustCompile(`class="([^"]+)"`)
	// .class-name selectors in the Bootstrap docs
	bootstrapPattern = regexp.MustCompile(`\.([\w-]+)`)

	errNoMatches = errors.New("no class names found in page")
)

// DefaultSources returns the built-in per-framework sources
func DefaultSources() map[Framework]Source {
	return map[Framework]Source{
		Tailwind:  {URL: DefaultTailwindURL, Pattern: tailwindPattern},
		Bootstrap: {URL: DefaultBootstrapURL, Pattern: bootstrapPattern},
	}
}

// RefreshOptions configures a Refresher. Zero values pick the defaults.
type RefreshOptions struct {
	Client   *http.Client
	Catalog  *Catalog
	Sources  map[Framework]Source
	Interval time.Duration
	Timeout  time.Duration
	Now      func() time.Time
}

// Refresher serves a framework's class list, refreshing it from the
// framework documentation at most once per interval and falling back to
// the built-in list whenever a refresh fails.
type Refresher struct {
	client   *http.Client
	catalog  *Catalog
	sources  map[Framework]Source
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	mu        sync.Mutex
	cache     map[Framework][]string
	lastFetch map[Framework]time.Time

	group singleflight.Group
}

// NewRefresher creates a refresher with empty caches
func NewRefresher(opts RefreshOptions) *Refresher {
	r := &Refresher{
		client:    opts.Client,
		catalog:   opts.Catalog,
		sources:   opts.Sources,
		interval:  opts.Interval,
		timeout:   opts.Timeout,
		now:       opts.Now,
		cache:     make(map[Framework][]string),
		lastFetch: make(map[Framework]time.Time),
	}
	if r.client == nil {
		r.client = http.DefaultClient
	}
	if r.catalog == nil {
		r.catalog = DefaultCatalog()
	}
	if r.sources == nil {
		r.sources = DefaultSources()
	}
	if r.interval <= 0 {
		r.interval = DefaultRefreshInterval
	}
	if r.timeout <= 0 {
		r.timeout = DefaultFetchTimeout
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Classes returns the class list for fw.
//
// Within the refresh interval of the last successful fetch the cached list
// is returned as-is, even when it is empty. Otherwise the documentation
// page is fetched; on success the harvested list replaces the cache, on
// failure nothing changes and the built-in list is returned.
func (r *Refresher) Classes(ctx context.Context, fw Framework) []string {
	now := r.now()

	r.mu.Lock()
	if now.Sub(r.lastFetch[fw]) < r.interval {
		cached := r.cache[fw]
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	v, err, _ := r.group.Do(string(fw), func() (any, error) {
		return r.refresh(ctx, fw, now)
	})
	if err != nil {
		log.Refresh("Failed to fetch latest %s classes: %v", fw, err)
		return r.catalog.Static(fw)
	}
	return v.([]string)
}

// Snapshot returns the cached list and the time of the last successful fetch
func (r *Refresher) Snapshot(fw Framework) ([]string, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.cache[fw]...), r.lastFetch[fw]
}

func (r *Refresher) refresh(ctx context.Context, fw Framework, now time.Time) ([]string, error) {
	src, ok := r.sources[fw]
	if !ok {
		return nil, fmt.Errorf("no source configured for %s", fw)
	}

	page, err := r.fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	classes := ExtractClasses(page, src.Pattern)
	if len(classes) == 0 {
		return nil, errNoMatches
	}

	r.mu.Lock()
	r.cache[fw] = classes
	r.lastFetch[fw] = now
	r.mu.Unlock()

	log.Refresh("Fetched %d %s classes from %s", len(classes), fw, src.URL)
	return classes, nil
}

func (r *Refresher) fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageSize))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

// ExtractClasses pulls class names out of page using pattern's first
// capture group. Captures holding several space-separated classes are
// split, and duplicates are dropped keeping first-seen order.
func ExtractClasses(page string, pattern *regexp.Regexp) []string {
	seen := make(map[string]bool)
	var classes []string

	for _, m := range pattern.FindAllStringSubmatch(page, -1) {
		if len(m) < 2 {
			continue
		}
		for _, cls := range strings.Fields(m[1]) {
			if !seen[cls] {
				seen[cls] = true
				classes = append(classes, cls)
			}
		}
	}

	return classes
}
