package postgres_test

import (
	"context"
	"recon/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func article(url, title string, published time.Time) domain.Article {
	return domain.Article{
		Source:      "Example Wire",
		Title:       title,
		Description: "description of " + title,
		URL:         url,
		ImageURL:    url + "/image.png",
		PublishedAt: published,
	}
}

func TestPgSQL_UpsertAndLatestArticles(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	n, err := pg.UpsertArticles(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = pg.UpsertArticles(ctx,
		article("https://news.example/a", "A", base),
		article("https://news.example/b", "B", base.Add(time.Hour)),
		article("https://news.example/b", "B duplicate in batch", base.Add(time.Hour)),
	)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	// same URL replaces the stored article
	updated := article("https://news.example/a", "A updated", base.Add(2*time.Hour))
	updated.Author = "Jane Doe"
	n, err = pg.UpsertArticles(ctx, updated)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	latest, err := pg.LatestArticles(ctx, 10)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.Equal(t, "A updated", latest[0].Title)
	require.Equal(t, "Jane Doe", latest[0].Author)
	require.True(t, latest[0].PublishedAt.Equal(base.Add(2*time.Hour)))
	require.Equal(t, "B", latest[1].Title)
	require.NotEqual(t, domain.ArticleID{}, latest[0].ID)

	latest, err = pg.LatestArticles(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
}
