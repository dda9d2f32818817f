package main

import (
	"context"
	"recon/internal/config"
	"recon/internal/news"
	"recon/internal/recon"
	"recon/pkg/logger"
	"recon/pkg/metrics"
	"recon/pkg/newsfeed"
	"recon/pkg/newsfeed/newsapi"
	"recon/pkg/osint"
	"recon/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "recon"

// newAnalyzer builds the reconnaissance analyzer. A nil meter provider
// disables lookup metrics.
func newAnalyzer(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) recon.Analyzer {
	lookups, err := metrics.NewLookups(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create lookup metrics", zap.Error(err))
	}

	deps, err := recon.NewDeps(cfg, lookups, otel.Tracer(instrumentationName))
	if err != nil {
		logger.Fatal(ctx, "could not create lookup clients", zap.Error(err))
	}

	analyzer, err := recon.New(deps, recon.DefaultOptions())
	if err != nil {
		logger.Fatal(ctx, "could not create analyzer", zap.Error(err))
	}

	return analyzer
}

// newFeed builds the news feed. Refreshing is unavailable without an API key.
func newFeed(ctx context.Context, cfg *config.Config, strg storage.Storage) news.Feed {
	var client newsfeed.Client
	if cfg.News.APIKey != "" {
		client = newsapi.New(osint.NewHTTPClient(cfg.Lookup.Timeout), cfg.News.BaseURL, cfg.News.APIKey)
	} else {
		logger.Warn(ctx, "news API key is not configured, news refresh is disabled")
	}

	return news.New(client, strg, news.NewOptions(cfg))
}
