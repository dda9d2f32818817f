// Package news keeps a local cache of cyber security news articles fetched
// from an upstream provider.
package news

import (
	"context"
	"fmt"
	"recon/internal/config"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"recon/pkg/newsfeed"
	"recon/pkg/serrors"
	"recon/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is used when Latest is called with a zero limit.
	DefaultLimit = 20
	// MaxLimit caps how many articles Latest returns.
	MaxLimit = 100

	// removedTitle marks articles the provider has taken down.
	removedTitle = "[Removed]"
)

// Options configure the feed and its refresh jobs.
type Options struct {
	// Query is the provider search expression.
	Query string
	// MaxAttempts is the maximum number of attempts of a refresh job.
	MaxAttempts int
	// RefreshInterval is how often the feed is refreshed. A scheduled refresh
	// is skipped when another one was enqueued within the same interval.
	RefreshInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Query:           cfg.News.Query,
		MaxAttempts:     cfg.News.MaxAttempts,
		RefreshInterval: cfg.News.RefreshInterval,
	}
}

// fallbackArticles is served while nothing has been fetched yet.
var fallbackArticles = []domain.Article{ //nolint: gochecknoglobals
	{
		ID:     domain.ArticleID(uuid.MustParse("6f0c1f9e-2b52-4a53-9c4e-5d2a0c7f1a01")),
		Source: "The Hacker News",
		Author: "Ravie Lakshmanan",
		Title:  "Critical Zero-Day in Chrome Exploited in Wild (Simulated)",
		Description: "Google has released an emergency update to patch a high-severity vulnerability " +
			"(CVE-2025-1234) that is actively being exploited.",
		URL:      "https://thehackernews.com/",
		ImageURL: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=2070",
		Content: "Google has released a patch for CVE-2025-1234. The flaw allows RCE via a crafted HTML page. " +
			"Researchers observed this in targeted attacks.",
		PublishedAt: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	},
}

// FallbackArticles returns a copy of the built-in article set.
func FallbackArticles() []domain.Article {
	out := make([]domain.Article, len(fallbackArticles))
	copy(out, fallbackArticles)

	return out
}

// Displayable reports whether an article can be shown in the feed: it needs an
// image, a description and a title that was not taken down.
func Displayable(a domain.Article) bool {
	title := strings.TrimSpace(a.Title)

	return a.ImageURL != "" &&
		strings.TrimSpace(a.Description) != "" &&
		title != "" &&
		title != removedTitle &&
		a.URL != ""
}

type feed struct {
	options Options
	client  newsfeed.Client
	storage storage.Storage
}

// Refresh fetches articles matching the configured query and upserts the
// displayable ones under their canonical URL.
func (f *feed) Refresh(ctx context.Context) (int64, error) {
	if f.client == nil {
		return 0, serrors.With(serrors.ErrUnavailable, "news provider is not configured")
	}

	fetched, err := f.client.Everything(ctx, f.options.Query)
	if err != nil {
		return 0, fmt.Errorf("could not fetch articles: %w", err)
	}

	keep := make([]domain.Article, 0, len(fetched))
	for _, a := range fetched {
		if !Displayable(a) {
			continue
		}
		canonical, err := NormalizeURL(a.URL)
		if err != nil {
			logger.Debug(ctx, "skipping article with invalid URL", zap.String("url", a.URL), zap.Error(err))

			continue
		}
		a.URL = canonical
		keep = append(keep, a)
	}
	logger.Debug(ctx, "fetched news articles", zap.Int("fetched", len(fetched)), zap.Int("displayable", len(keep)))
	if len(keep) == 0 {
		return 0, nil
	}

	n, err := f.storage.UpsertArticles(ctx, keep...)
	if err != nil {
		return 0, fmt.Errorf("could not store articles: %w", err)
	}

	return n, nil
}

// ScheduleRefresh enqueues a background refresh. It returns false when an
// equivalent refresh is already queued.
func (f *feed) ScheduleRefresh(ctx context.Context) (bool, error) {
	added, err := f.storage.AddJob(ctx, NewRefreshArgs(f.options), nil)
	if err != nil {
		return false, fmt.Errorf("could not add job: %w", err)
	}

	return added, nil
}

// Latest returns the newest stored articles. When the cache is empty the
// built-in articles are returned instead.
func (f *feed) Latest(ctx context.Context, limit uint) ([]domain.Article, error) {
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	articles, err := f.storage.LatestArticles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get articles: %w", err)
	}
	if len(articles) == 0 {
		fb := FallbackArticles()
		if uint(len(fb)) > limit {
			fb = fb[:limit]
		}

		return fb, nil
	}

	return articles, nil
}

// New creates a Feed. A nil client disables Refresh; Latest keeps serving
// whatever is stored.
func New(client newsfeed.Client, storage storage.Storage, options Options) Feed {
	return &feed{
		options: options,
		client:  client,
		storage: storage,
	}
}
