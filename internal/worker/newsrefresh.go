package worker

import (
	"context"
	"errors"
	"fmt"
	"recon/internal/news"
	"recon/pkg/logger"
	"recon/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultRateLimitBackoff is used when no backoff is configured.
const DefaultRateLimitBackoff = 15 * time.Minute

// NewsRefreshWorker is a River worker that refreshes the news cache.
//
// A refresh rejected by the provider's rate limit is snoozed for the backoff
// without consuming an attempt. A missing or rejected API key cancels the job
// since retrying cannot succeed. Other errors are returned so River retries
// the job with its default backoff.
type NewsRefreshWorker struct {
	river.WorkerDefaults[news.RefreshArgs]

	feed    news.Feed
	backoff time.Duration
}

// NewNewsRefreshWorker constructs a NewsRefreshWorker.
func NewNewsRefreshWorker(feed news.Feed, backoff time.Duration) *NewsRefreshWorker {
	if backoff <= 0 {
		backoff = DefaultRateLimitBackoff
	}

	return &NewsRefreshWorker{
		feed:    feed,
		backoff: backoff,
	}
}

// Work runs a single refresh.
func (w *NewsRefreshWorker) Work(ctx context.Context, job *river.Job[news.RefreshArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("attempt", job.Attempt))

	n, err := w.feed.Refresh(ctx)
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrRateLimited):
			logger.Warn(ctx, "news provider rate limited", zap.Error(err), zap.Duration("snooze", w.backoff))

			return river.JobSnooze(w.backoff) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrUnauthorized), errors.Is(err, serrors.ErrUnavailable):
			logger.Error(ctx, "news refresh cannot succeed", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in refreshing news", zap.Error(err))

		return fmt.Errorf("could not refresh news: %w", err)
	}

	logger.Info(ctx, "news refreshed", zap.Int64("stored", n))

	return nil
}
