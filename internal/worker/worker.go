// Package worker runs the background jobs of the service on River.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"recon/internal/config"
	"recon/internal/news"
	"recon/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job runtime.
type Options struct {
	// Workers is the number of jobs worked concurrently.
	Workers int
	// PeriodicRefresh enables the scheduled news refresh.
	PeriodicRefresh bool
	// RefreshInterval is the period of the scheduled news refresh.
	RefreshInterval time.Duration
	// RateLimitBackoff is how long a rate limited refresh is snoozed.
	RateLimitBackoff time.Duration
	// News are the options refresh jobs are inserted with.
	News news.Options
}

// NewOptions constructs an Options value from the provided application config.
// The scheduled refresh is only enabled when a news API key is configured.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:          cfg.News.Workers,
		PeriodicRefresh:  cfg.News.APIKey != "" && cfg.News.RefreshInterval > 0,
		RefreshInterval:  cfg.News.RefreshInterval,
		RateLimitBackoff: cfg.News.RateLimitBackoff,
		News:             news.NewOptions(cfg),
	}
}

// PeriodicJobs returns the jobs River schedules by itself.
func PeriodicJobs(options Options) []*river.PeriodicJob {
	if !options.PeriodicRefresh {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.RefreshInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return news.NewRefreshArgs(options.News), nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// Start registers the workers and starts processing jobs. The returned
// client must be stopped by the caller.
func Start(ctx context.Context, dbPool *pgxpool.Pool, feed news.Feed, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNewsRefreshWorker(feed, options.RateLimitBackoff))

	maxWorkers := options.Workers
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: PeriodicJobs(options),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}
	logger.Info(ctx, "workers started",
		zap.Int("maxWorkers", maxWorkers),
		zap.Bool("periodicRefresh", options.PeriodicRefresh))

	return riverClient, nil
}
