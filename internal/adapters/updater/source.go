package updater

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReleaseSource = (*HTTPSource)(nil)

// HTTPSource fetches release content over HTTP.
type HTTPSource struct {
	client *http.Client
}

// NewHTTPSource creates an HTTPSource with a bounded request timeout.
func NewHTTPSource() *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the raw content at url. Any status other than 200 is an
// error.
func (s *HTTPSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.With(zerr.New("unexpected status"), "status", resp.StatusCode), "url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	return data, nil
}

var _ ports.ReleaseSource = (*CachedSource)(nil)

// CachedSource decorates a ReleaseSource with the persistent web-content
// cache. Responses are stored below the web_cache subfolder and reused
// until maxAge. Update manifests must not go through it: a stale manifest
// hides a fresh release.
type CachedSource struct {
	fetch func(ctx context.Context, url string) ([]byte, error)
}

// NewCachedSource wraps source with the persistent cache c, which may be
// nil to disable caching entirely.
func NewCachedSource(source ports.ReleaseSource, c *cache.Cache, maxAge time.Duration) *CachedSource {
	return &CachedSource{
		fetch: cache.Memoized(c, "web_content", source.Fetch,
			cache.WithSubdir("web_cache"),
			cache.WithMaxAge(maxAge),
		),
	}
}

// Fetch returns the cached content at url, fetching it from the underlying
// source on a miss.
func (s *CachedSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	return s.fetch(ctx, url)
}
