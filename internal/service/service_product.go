// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/internal/store"
	"github.com/feira-digital/mercado-api/internal/validators"
	"github.com/feira-digital/mercado-api/models"
)

type productService struct {
	products  store.ProductRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewProductService constructs a [ProductService] over the given repository.
func NewProductService(
	products store.ProductRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ProductService {
	logger.Debug().Msg("creating product service")
	return &productService{
		products:  products,
		validator: validator,
		logger:    logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, product *models.Product) (int64, error) {
	if err := s.validator.Validate(ctx, product); err != nil {
		return 0, fmt.Errorf("error during product validation before saving: %w", err)
	}

	return s.products.CreateProduct(ctx, *product)
}

func (s *productService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return s.products.GetProduct(ctx, id)
}

func (s *productService) UpdateProduct(ctx context.Context, product *models.Product) error {
	// the update target travels in the body, so the id is validated too
	if err := s.validator.Validate(ctx, product, validators.FieldID); err != nil {
		return fmt.Errorf("error during product validation before updating: %w", err)
	}

	return s.products.UpdateProduct(ctx, *product)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	return s.products.DeleteProduct(ctx, id)
}
