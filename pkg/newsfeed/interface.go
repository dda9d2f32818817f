// Package newsfeed defines the upstream news provider used to refresh the
// cyber security news feed.
package newsfeed

import (
	"context"
	"recon/pkg/domain"
)

// Client is implemented by news providers.
//
//go:generate mockgen -package mocknewsfeed -source=interface.go -destination=mock/mocknewsfeed.go *
type Client interface {
	// Everything returns the articles matching query, newest first. A
	// provider side rate limit is reported as serrors.ErrRateLimited and a
	// rejected API key as serrors.ErrUnauthorized. Returned articles carry no ID.
	Everything(ctx context.Context, query string) ([]domain.Article, error)
}
