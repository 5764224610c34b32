package postgres

import (
	"context"
	"fmt"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	runsTable = "batch_runs"
)

func (p *PgSQL) StoreRun(ctx context.Context, run domain.BatchRun) (*domain.BatchRun, error) {
	var row PgRun
	if err := row.FromDomain(run); err != nil {
		return nil, err
	}

	var stored PgRun
	found, err := p.Builder.Insert(runsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store run into pg: %w", err)
	}
	if !found {
		return p.RunByID(ctx, domain.RunID(row.ID))
	}

	return stored.ToDomain()
}

// UpdateRun sets the provided fields and updated_at on a single run.
func (p *PgSQL) UpdateRun(ctx context.Context, id domain.RunID, updates storage.RunUpdates) (*domain.BatchRun, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.StartedAt != nil {
		rec["started_at"] = *updates.StartedAt
	}
	if updates.FinishedAt != nil {
		rec["finished_at"] = *updates.FinishedAt
	}
	if updates.SucceededCount != nil {
		rec["succeeded_count"] = *updates.SucceededCount
	}
	if updates.FailedCount != nil {
		rec["failed_count"] = *updates.FailedCount
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgRun
	found, err := p.Builder.Update(runsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update run in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) RunByID(ctx context.Context, id domain.RunID) (*domain.BatchRun, error) {
	var row PgRun
	found, err := p.Builder.From(runsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch run by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
