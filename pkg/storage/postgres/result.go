package postgres

import (
	"context"
	"fmt"
	"pricewatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	resultsTable = "check_results"
)

// StoreCheckResult upserts the result keyed by (run_id, product_id).
func (p *PgSQL) StoreCheckResult(ctx context.Context, result domain.CheckResult) error {
	var row PgCheckResult
	if err := row.FromDomain(result); err != nil {
		return err
	}

	set := goqu.Record{}
	for _, col := range resultColumns {
		set[col] = goqu.I("excluded." + col)
	}

	if _, err := p.Builder.Insert(resultsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("run_id, product_id", set)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store check result into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteRunResults(ctx context.Context, runID domain.RunID) (int64, error) {
	res, err := p.Builder.Delete(resultsTable).
		Where(goqu.I("run_id").Eq(uuid.UUID(runID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete run results from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted run results: %w", err)
	}

	return n, nil
}

func (p *PgSQL) RunResults(ctx context.Context, runID domain.RunID) ([]domain.CheckResult, error) {
	var rows []PgCheckResult
	if err := p.Builder.From(resultsTable).
		Where(goqu.I("run_id").Eq(uuid.UUID(runID))).
		Order(goqu.I("checked_at").Asc(), goqu.I("product_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch run results from pg: %w", err)
	}

	return toDomain[PgCheckResult, domain.CheckResult](rows)
}

func (p *PgSQL) ProductResults(ctx context.Context,
	productID domain.ProductID,
	limit uint) ([]domain.CheckResult, error) {
	var rows []PgCheckResult
	if err := p.Builder.From(resultsTable).
		Where(goqu.I("product_id").Eq(uuid.UUID(productID))).
		Order(goqu.I("checked_at").Desc(), goqu.I("run_id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch product results from pg: %w", err)
	}

	return toDomain[PgCheckResult, domain.CheckResult](rows)
}
