package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/civmods/forceval/internal/cache"
	"github.com/civmods/forceval/internal/model"
	"github.com/civmods/forceval/internal/util"
	"github.com/civmods/forceval/internal/worker"
)

// Fetcher retrieves corpus documents over HTTP with caching, per-host rate
// limiting and robots.txt checks.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	store      cache.Cache
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
}

// NewFetcher builds a fetcher from config. Pass a nil store to disable
// caching.
func NewFetcher(cfg *model.Config, store cache.Cache) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		store:     store,
		limiter:   worker.NewLimiter(cfg.HTTP.RequestsPerSecond, 2),
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
	}
}

// Fetch returns the body and HTTP metadata for rawURL, serving from cache
// when possible. Cached bodies report a zero FetchMeta status.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, model.FetchMeta, error) {
	if f.store != nil {
		if body, ok := f.store.Get(cache.Key(rawURL)); ok {
			return body, model.FetchMeta{}, nil
		}
	}

	allowed, err := f.robots.Allowed(ctx, rawURL)
	if err != nil {
		return nil, model.FetchMeta{}, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, model.FetchMeta{}, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, model.FetchMeta{}, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, model.FetchMeta{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json,text/markdown,text/html;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, model.FetchMeta{}, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	meta := model.FetchMeta{
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		LastModified: resp.Header.Get("Last-Modified"),
		ETag:         resp.Header.Get("ETag"),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, meta, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, meta, fmt.Errorf("read body: %w", err)
	}

	if f.store != nil {
		_ = f.store.Set(cache.Key(rawURL), body, 0)
	}

	return body, meta, nil
}
