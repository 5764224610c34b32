package storage

import (
	"context"
	"pricewatch/pkg/domain"
)

// ProductStorage gives the monitor read access to tracked products. Products
// are owned by an external CRUD service; StoreProducts exists for seeding.
type ProductStorage interface {
	// Products returns the products with the given IDs, or every product when no
	// ID is given, ordered by creation time. Unknown IDs are ignored.
	Products(ctx context.Context, IDs ...domain.ProductID) ([]domain.TrackedProduct, error)
	// StoreProducts inserts products and returns them as stored. Products
	// without an ID get a generated one.
	StoreProducts(ctx context.Context, products ...domain.TrackedProduct) ([]domain.TrackedProduct, error)
}
