package postgres

import (
	"context"
	"fmt"
	"pricewatch/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	productsTable = "tracked_products"
)

func (p *PgSQL) Products(ctx context.Context, IDs ...domain.ProductID) ([]domain.TrackedProduct, error) {
	ds := p.Builder.From(productsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	if len(IDs) > 0 {
		ids := make([]any, 0, len(IDs))
		for _, id := range IDs {
			ids = append(ids, uuid.UUID(id).String())
		}
		ds = ds.Where(goqu.I("id").In(ids...))
	}

	var rows []PgProduct
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch products from pg: %w", err)
	}

	return toDomain[PgProduct, domain.TrackedProduct](rows)
}

func (p *PgSQL) StoreProducts(ctx context.Context,
	products ...domain.TrackedProduct) ([]domain.TrackedProduct, error) {
	if len(products) == 0 {
		return nil, nil
	}

	rows := make([]PgProduct, len(products))
	for i := range products {
		if err := rows[i].FromDomain(products[i]); err != nil {
			return nil, err
		}
	}

	var result []PgProduct
	if err := p.Builder.Insert(productsTable).
		Rows(rows).
		Returning(&PgProduct{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store products into pg: %w", err)
	}

	return toDomain[PgProduct, domain.TrackedProduct](result)
}
