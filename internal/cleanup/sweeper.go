// Package cleanup sweeps stored listings whose source pages have died
// and marks them expired.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Abla25/roomradar/internal/domain"
	"github.com/Abla25/roomradar/internal/storage"
)

const (
	defaultProbeTimeout  = 15 * time.Second
	defaultProbeInterval = 500 * time.Millisecond
)

// Paths a hosting site serves in place of a removed or walled-off post.
// A listing link pointing at one of these is dead without probing.
var deadPathPattern = regexp.MustCompile(`/(login|checkpoint|error|sorry|unsupportedbrowser|help)(/|$)`)

// Post IDs far outside the usual length are malformed or ancient.
var postIDPattern = regexp.MustCompile(`/posts/(\d+)`)

// SearchIndexer mirrors status changes into the search index.
type SearchIndexer interface {
	SetStatus(ctx context.Context, id string, status domain.Status) error
}

// Report summarizes one sweep.
type Report struct {
	Checked int
	Dead    int
	Expired int
}

type Sweeper struct {
	store   storage.ListingStore
	indexer SearchIndexer
	client  *http.Client
	limiter *rate.Limiter
	dryRun  bool
}

type Option func(*Sweeper)

// WithDryRun probes links without expiring anything.
func WithDryRun() Option {
	return func(s *Sweeper) { s.dryRun = true }
}

func WithIndexer(indexer SearchIndexer) Option {
	return func(s *Sweeper) { s.indexer = indexer }
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Sweeper) { s.client = client }
}

func WithProbeInterval(d time.Duration) Option {
	return func(s *Sweeper) { s.limiter = rate.NewLimiter(rate.Every(d), 1) }
}

func NewSweeper(store storage.ListingStore, opts ...Option) *Sweeper {
	s := &Sweeper{
		store: store,
		client: &http.Client{
			Timeout: defaultProbeTimeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		limiter: rate.NewLimiter(rate.Every(defaultProbeInterval), 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run checks every active listing of a city and expires the dead ones.
// A link whose path matches a known error page is dead without probing;
// the rest get a light HEAD probe that does not follow redirects, where
// 404, 410, 403 or a redirect towards an error page count as dead.
// Network errors keep the listing alive, the next sweep retries it.
func (s *Sweeper) Run(ctx context.Context, city string) (Report, error) {
	var report Report

	listings, err := s.store.QueryActive(ctx, city)
	if err != nil {
		return report, fmt.Errorf("failed to load active listings: %w", err)
	}

	for _, listing := range listings {
		report.Checked++

		dead, suspicious := triageLink(listing.Link)
		if suspicious {
			slog.Info("listing link has a suspicious post id", "link", listing.Link)
		}
		if !dead {
			if err := s.limiter.Wait(ctx); err != nil {
				return report, err
			}
			dead, err = s.probe(ctx, listing.Link)
			if err != nil {
				slog.Warn("link probe failed, keeping listing", "link", listing.Link, "error", err)
				continue
			}
		}
		if !dead {
			continue
		}
		report.Dead++

		if s.dryRun {
			slog.Info("dead link found (dry run)", "link", listing.Link, "id", listing.ID)
			continue
		}

		if err := s.store.SetStatus(ctx, listing.ID, domain.StatusExpired); err != nil {
			slog.Error("failed to expire dead listing", "id", listing.ID, "error", err)
			continue
		}
		if s.indexer != nil {
			if err := s.indexer.SetStatus(ctx, listing.ID.String(), domain.StatusExpired); err != nil {
				slog.Error("failed to expire dead listing in search index", "id", listing.ID, "error", err)
			}
		}
		report.Expired++
		slog.Info("dead listing expired", "link", listing.Link, "id", listing.ID)
	}

	slog.Info("cleanup sweep finished",
		"city", city,
		"checked", report.Checked,
		"dead", report.Dead,
		"expired", report.Expired)

	return report, nil
}

// triageLink classifies a link by its URL shape alone. dead means the
// path is one a site serves instead of a removed post; suspicious means
// the post id length is off and the probe result deserves less trust.
func triageLink(link string) (dead, suspicious bool) {
	u, err := url.Parse(link)
	if err != nil {
		return true, false
	}
	path := strings.ToLower(u.Path)
	if deadPathPattern.MatchString(path) {
		return true, false
	}
	if m := postIDPattern.FindStringSubmatch(path); m != nil {
		if n := len(m[1]); n < 10 || n > 20 {
			return false, true
		}
	}
	return false, false
}

// probe issues a HEAD request without following redirects, falling back
// to GET for servers that do not allow HEAD.
func (s *Sweeper) probe(ctx context.Context, link string) (bool, error) {
	status, location, err := s.request(ctx, http.MethodHead, link)
	if err != nil {
		return false, err
	}
	if status == http.StatusMethodNotAllowed {
		status, location, err = s.request(ctx, http.MethodGet, link)
		if err != nil {
			return false, err
		}
	}
	switch {
	case status == http.StatusNotFound, status == http.StatusGone, status == http.StatusForbidden:
		return true, nil
	case status >= 300 && status < 400:
		// A redirect towards a login or error page means the post is gone.
		return deadPathPattern.MatchString(strings.ToLower(location)), nil
	default:
		return false, nil
	}
}

func (s *Sweeper) request(ctx context.Context, method, link string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, link, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to probe link: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, resp.Header.Get("Location"), nil
}
