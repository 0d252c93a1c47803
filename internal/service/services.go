package service

import (
	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/internal/store"
	"github.com/feira-digital/mercado-api/internal/validators"
)

// Services aggregates every application service for injection into the
// transport layer.
type Services struct {
	SellerService  SellerService
	ProductService ProductService
}

// NewServices wires the services over the given storages. Both services share
// one declarative entity validator.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	validator := validators.NewEntityValidator()

	return &Services{
		SellerService:  NewSellerService(storages.SellerRepository, storages.ProductRepository, validator, logger),
		ProductService: NewProductService(storages.ProductRepository, validator, logger),
	}
}
