package catalog

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// Store is the read port onto the content store.
// An absent product is (nil, nil), not an error: "not found" is a normal answer
// for a catalog lookup, the same way our repos return nil for missing rows.
type Store interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
}

// Reader is the catalog read path the pages use. It degrades store failures into
// empty results so the storefront renders a "no products" state instead of a 500.
// Every call is a fresh query against the store: no cache, no retry.
type Reader struct {
	store  Store
	logger *zap.Logger
}

func NewReader(store Store, logger *zap.Logger) *Reader {
	return &Reader{store: store, logger: logger}
}

// ListProducts returns the catalog ordered by display order ascending.
// The store query already orders, but we sort stably here anyway so the contract
// holds no matter what the store sends back. Ties keep store order.
func (r *Reader) ListProducts(ctx context.Context) []Product {
	products, err := r.store.ListProducts(ctx)
	if err != nil {
		r.logger.Warn("content store list failed, rendering empty catalog", zap.Error(err))
		return nil
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Order < products[j].Order
	})
	return products
}

// GetProductBySlug returns the product or nil, treating store failures the same
// as absence. The page shows "not found" either way.
func (r *Reader) GetProductBySlug(ctx context.Context, slug string) *Product {
	product, err := r.store.GetProductBySlug(ctx, slug)
	if err != nil {
		r.logger.Warn("content store lookup failed, treating as absent",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return nil
	}
	return product
}
