package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a River job through the current handle. Inside a
// transaction the job is inserted with InsertTx and only becomes visible to
// workers once the transaction commits, together with the run it executes.
// It reports false when River skipped the job as a duplicate of a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		// an insert-only client does not need a pool
		client, cErr := river.NewClient(riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cErr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
