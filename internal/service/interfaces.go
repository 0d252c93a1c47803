package service

import (
	"context"

	"github.com/feira-digital/mercado-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// SellerService carries every seller operation exposed over HTTP. Write
// operations validate the payload (trimming textual fields in place) before
// touching the storage layer.
type SellerService interface {
	// CreateSeller validates and persists a new seller.
	CreateSeller(ctx context.Context, seller *models.Seller) error

	// GetSeller returns the seller identified by uid.
	GetSeller(ctx context.Context, uid string) (models.Seller, error)

	// UpdateSeller validates the payload and replaces every mutable field of
	// the seller row identified by seller.UID.
	UpdateSeller(ctx context.Context, seller *models.Seller) error

	// GetSellerProducts returns every product offered by the seller with the
	// given uid; an unknown uid yields an empty slice, not an error.
	GetSellerProducts(ctx context.Context, uid string) ([]models.Product, error)
}

// ProductService carries every product operation exposed over HTTP.
type ProductService interface {
	// CreateProduct validates and persists a new product, returning the
	// database-generated id.
	CreateProduct(ctx context.Context, product *models.Product) (int64, error)

	// GetProduct returns the product identified by id.
	GetProduct(ctx context.Context, id int64) (models.Product, error)

	// UpdateProduct validates the payload (including the positive id it must
	// carry) and replaces every mutable field of the targeted product row.
	UpdateProduct(ctx context.Context, product *models.Product) error

	// DeleteProduct removes the product identified by id; deleting an absent
	// id still succeeds.
	DeleteProduct(ctx context.Context, id int64) error
}
