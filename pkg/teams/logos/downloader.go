// Package logos downloads team logo SVGs into a local directory so
// team-selection descriptors can reference them.
package logos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-formdecor/pkg/teams"
)

// DefaultBaseURL hosts the NFL logo set.
const DefaultBaseURL = "https://acrisurestadium.com/wp-content/uploads/gbl/nfl-team-logos/"

const (
	defaultDir     = "nfl_logos"
	defaultTimeout = 30 * time.Second
	defaultDelay   = 500 * time.Millisecond
	maxLogoBytes   = 4 << 20
)

// Options configures a Downloader.
type Options struct {
	BaseURL string
	Dir     string
	// Timeout caps each request.
	Timeout time.Duration
	// Delay is the pause between consecutive requests.
	Delay  time.Duration
	Client *http.Client
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithBaseURL overrides the logo host. A trailing slash is added when
// missing so file names resolve beneath it.
func WithBaseURL(raw string) Option {
	return func(o *Options) {
		o.BaseURL = strings.TrimSpace(raw)
	}
}

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = strings.TrimSpace(dir)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithDelay sets the pause between requests. Zero disables it.
func WithDelay(delay time.Duration) Option {
	return func(o *Options) {
		o.Delay = delay
	}
}

// WithHTTPClient injects the client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.Client = client
	}
}

// WithLogger injects a logger for per-team progress.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Summary reports the outcome of a run. Failed maps slugs to their error.
type Summary struct {
	Succeeded []string
	Failed    map[string]error
	Dir       string
}

// FailedSlugs returns the failed slugs in download order.
func (s Summary) FailedSlugs(order []string) []string {
	out := make([]string, 0, len(s.Failed))
	for _, slug := range order {
		if _, ok := s.Failed[slug]; ok {
			out = append(out, slug)
		}
	}
	return out
}

// Downloader fetches <BaseURL><slug>-logo.svg for each slug.
type Downloader struct {
	base   *url.URL
	opts   Options
	client *http.Client
	logger *slog.Logger
}

// New validates options and builds a Downloader.
func New(opts ...Option) (*Downloader, error) {
	cfg := Options{
		BaseURL: DefaultBaseURL,
		Dir:     defaultDir,
		Timeout: defaultTimeout,
		Delay:   defaultDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("logos: invalid base URL %q", cfg.BaseURL)
	}
	if cfg.Dir == "" {
		cfg.Dir = defaultDir
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Downloader{base: base, opts: cfg, client: client, logger: logger}, nil
}

// Options returns the effective configuration.
func (d *Downloader) Options() Options {
	return d.opts
}

// URL returns the remote location of slug's logo.
func (d *Downloader) URL(slug string) string {
	return d.base.ResolveReference(&url.URL{Path: teams.LogoFile(slug)}).String()
}

// Download fetches every slug in order. Individual failures are recorded in
// the summary and never stop the run; only context cancellation or an
// unusable output directory return an error.
func (d *Downloader) Download(ctx context.Context, slugs []string) (Summary, error) {
	dir, err := filepath.Abs(d.opts.Dir)
	if err != nil {
		return Summary{}, fmt.Errorf("logos: resolve dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("logos: create dir: %w", err)
	}

	summary := Summary{Dir: dir, Failed: make(map[string]error)}
	for idx, slug := range slugs {
		if idx > 0 && d.opts.Delay > 0 {
			if err := sleep(ctx, d.opts.Delay); err != nil {
				return summary, err
			}
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if err := d.fetch(ctx, slug, dir); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return summary, ctxErr
			}
			d.logger.Debug("logo download failed", "team", slug, "error", err)
			summary.Failed[slug] = err
			continue
		}
		d.logger.Debug("logo downloaded", "team", slug)
		summary.Succeeded = append(summary.Succeeded, slug)
	}
	return summary, nil
}

func (d *Downloader) fetch(ctx context.Context, slug, dir string) error {
	reqCtx := ctx
	if d.opts.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, d.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, d.URL(slug), nil)
	if err != nil {
		return fmt.Errorf("logos: build request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("logos: fetch %s: %w", slug, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("logos: fetch %s: unexpected status %d", slug, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return fmt.Errorf("logos: read %s: %w", slug, err)
	}
	if len(data) > maxLogoBytes {
		return errors.New("logos: " + slug + ": logo exceeds size limit")
	}

	if err := os.WriteFile(filepath.Join(dir, teams.LogoFile(slug)), data, 0o644); err != nil {
		return fmt.Errorf("logos: write %s: %w", slug, err)
	}
	return nil
}

func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
