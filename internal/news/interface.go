package news

import (
	"context"
	"recon/pkg/domain"
)

//go:generate mockgen -package mocknews -source=interface.go -destination=mock/mocknews.go *
type Feed interface {
	// Refresh pulls the latest articles from the provider and stores the
	// displayable ones. It returns the number of stored rows.
	Refresh(ctx context.Context) (int64, error)
	// ScheduleRefresh enqueues a background Refresh and reports whether a new
	// job was added.
	ScheduleRefresh(ctx context.Context) (bool, error)
	// Latest returns up to limit stored articles, newest first.
	Latest(ctx context.Context, limit uint) ([]domain.Article, error)
}
