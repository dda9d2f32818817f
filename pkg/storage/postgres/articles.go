package postgres

import (
	"context"
	"fmt"
	"recon/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	articlesTable = "articles"
)

// UpsertArticles inserts articles keyed by URL. Articles already stored under
// the same URL are overwritten with the new content.
func (p *PgSQL) UpsertArticles(ctx context.Context, articles ...domain.Article) (int64, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	// a single INSERT cannot touch the same conflict key twice
	seen := make(map[string]bool, len(articles))
	rows := make([]PgArticle, 0, len(articles))
	for _, a := range articles {
		if seen[a.URL] {
			continue
		}
		seen[a.URL] = true

		var row PgArticle
		row.FromDomain(a)
		rows = append(rows, row)
	}

	res, err := p.Builder.Insert(articlesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("url", goqu.Record{
			"source":       goqu.L("EXCLUDED.source"),
			"author":       goqu.L("EXCLUDED.author"),
			"title":        goqu.L("EXCLUDED.title"),
			"description":  goqu.L("EXCLUDED.description"),
			"image_url":    goqu.L("EXCLUDED.image_url"),
			"content":      goqu.L("EXCLUDED.content"),
			"published_at": goqu.L("EXCLUDED.published_at"),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not upsert articles into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get upserted article count: %w", err)
	}

	return n, nil
}

// LatestArticles returns the newest articles ordered by published_at DESC, id DESC.
func (p *PgSQL) LatestArticles(ctx context.Context, limit uint) ([]domain.Article, error) {
	var rows []PgArticle
	if err := p.Builder.From(articlesTable).
		Order(goqu.I("published_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch latest articles from pg: %w", err)
	}

	return pgArticlesToDomain(rows), nil
}
