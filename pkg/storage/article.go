package storage

import (
	"context"
	"recon/pkg/domain"
)

// ArticleStorage persists news articles. Articles are identified by URL.
type ArticleStorage interface {
	// UpsertArticles inserts articles, replacing the stored ones with the same
	// URL, and returns the number of rows written.
	UpsertArticles(ctx context.Context, articles ...domain.Article) (int64, error)
	// LatestArticles returns up to limit articles, newest publication first.
	LatestArticles(ctx context.Context, limit uint) ([]domain.Article, error)
}
