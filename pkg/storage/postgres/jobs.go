package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a River job. Inside a transaction the job becomes visible
// only when the transaction commits; otherwise it is visible immediately.
// Unique jobs that already exist are reported with false.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cerr := insertOnlyClient(nil)
		if cerr != nil {
			return false, cerr
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cerr := insertOnlyClient(db)
		if cerr != nil {
			return false, cerr
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported db handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

// insertOnlyClient returns a River client without queues, which is all
// inserting needs. db may be nil for clients used only with InsertTx.
func insertOnlyClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}
