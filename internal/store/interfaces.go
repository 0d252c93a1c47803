package store

import (
	"context"

	"github.com/feira-digital/mercado-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// SellerRepository persists and retrieves sellers. Each method issues exactly
// one parameterized statement against the shared connection pool.
type SellerRepository interface {
	// CreateSeller inserts a new seller row. Returns
	// [ErrSellerAlreadyExists] when a row with the same uid is present.
	CreateSeller(ctx context.Context, seller models.Seller) error

	// GetSeller returns the seller identified by uid, or [ErrSellerNotFound].
	GetSeller(ctx context.Context, uid string) (models.Seller, error)

	// UpdateSeller replaces every mutable field of the seller row identified
	// by seller.UID. Updating an absent uid is not an error; the statement
	// simply affects zero rows.
	UpdateSeller(ctx context.Context, seller models.Seller) error
}

// ProductRepository persists and retrieves products. Each method issues
// exactly one parameterized statement against the shared connection pool.
type ProductRepository interface {
	// CreateProduct inserts a new product row and returns the
	// database-generated id.
	CreateProduct(ctx context.Context, product models.Product) (int64, error)

	// GetProduct returns the product identified by id, or [ErrProductNotFound].
	GetProduct(ctx context.Context, id int64) (models.Product, error)

	// GetProductsBySeller returns every product offered by the seller with
	// the given uid. A seller with no products yields an empty, non-nil slice.
	GetProductsBySeller(ctx context.Context, vendedorUID string) ([]models.Product, error)

	// UpdateProduct replaces every mutable field of the product row
	// identified by product.ID.
	UpdateProduct(ctx context.Context, product models.Product) error

	// DeleteProduct removes the product row identified by id. Deleting an
	// absent id is not an error (idempotent delete).
	DeleteProduct(ctx context.Context, id int64) error
}
