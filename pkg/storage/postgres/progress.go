package postgres

import (
	"context"
	"fmt"
	"recon/pkg/domain"
	"recon/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	progressTable = "progress"
)

// ProgressByUser returns the progress row of userID. With lock, a missing row
// is inserted first so that SELECT ... FOR UPDATE always has a row to lock and
// concurrent first writes of the same user serialize.
func (p *PgSQL) ProgressByUser(ctx context.Context, userID domain.UserID, lock bool) (*domain.Progress, error) {
	ds := p.Builder.From(progressTable).Where(goqu.I("user_id").Eq(uuid.UUID(userID)))
	if lock {
		if !p.inTx() {
			return nil, storage.ErrNotInTx
		}

		_, err := p.Builder.Insert(progressTable).
			Rows(goqu.Record{"user_id": uuid.UUID(userID)}).
			OnConflict(goqu.DoNothing()).
			Executor().ExecContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create progress row in pg: %w", err)
		}

		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgProgress
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch progress from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SaveProgress upserts the progress row and bumps updated_at.
func (p *PgSQL) SaveProgress(ctx context.Context, progress domain.Progress) (*domain.Progress, error) {
	var row PgProgress
	if err := row.FromDomain(progress); err != nil {
		return nil, err
	}

	var saved PgProgress
	found, err := p.Builder.Insert(progressTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"lessons_completed": goqu.L("EXCLUDED.lessons_completed"),
			"quiz_scores":       goqu.L("EXCLUDED.quiz_scores"),
			"xp":                goqu.L("EXCLUDED.xp"),
			"badges":            goqu.L("EXCLUDED.badges"),
			"tracks":            goqu.L("EXCLUDED.tracks"),
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgProgress{}).
		Executor().ScanStructContext(ctx, &saved)
	if err != nil {
		return nil, fmt.Errorf("could not save progress into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not save progress into pg: no row returned")
	}

	return saved.ToDomain()
}

// DeleteProgress removes the progress row of userID, if any.
func (p *PgSQL) DeleteProgress(ctx context.Context, userID domain.UserID) error {
	_, err := p.Builder.Delete(progressTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete progress in pg: %w", err)
	}

	return nil
}
