package storage

import (
	"context"
	"recon/pkg/domain"
)

// ProgressStorage persists the learning progress of users.
type ProgressStorage interface {
	// ProgressByUser returns the stored progress of userID, or nil when the
	// user has none. With lock set, the row is created when missing and locked
	// until the surrounding transaction ends; locking outside a transaction
	// fails with ErrNotInTx.
	ProgressByUser(ctx context.Context, userID domain.UserID, lock bool) (*domain.Progress, error)
	// SaveProgress inserts or replaces the progress of progress.UserID and
	// returns the stored row.
	SaveProgress(ctx context.Context, progress domain.Progress) (*domain.Progress, error)
	// DeleteProgress removes the progress of userID. Deleting a missing row is
	// not an error.
	DeleteProgress(ctx context.Context, userID domain.UserID) error
}
