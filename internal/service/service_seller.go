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

type sellerService struct {
	sellers   store.SellerRepository
	products  store.ProductRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewSellerService constructs a [SellerService] over the given repositories.
// The product repository backs the seller's product listing.
func NewSellerService(
	sellers store.SellerRepository,
	products store.ProductRepository,
	validator validators.Validator,
	logger *logger.Logger,
) SellerService {
	logger.Debug().Msg("creating seller service")
	return &sellerService{
		sellers:   sellers,
		products:  products,
		validator: validator,
		logger:    logger,
	}
}

func (s *sellerService) CreateSeller(ctx context.Context, seller *models.Seller) error {
	if err := s.validator.Validate(ctx, seller); err != nil {
		return fmt.Errorf("error during seller validation before saving: %w", err)
	}

	return s.sellers.CreateSeller(ctx, *seller)
}

func (s *sellerService) GetSeller(ctx context.Context, uid string) (models.Seller, error) {
	return s.sellers.GetSeller(ctx, uid)
}

func (s *sellerService) UpdateSeller(ctx context.Context, seller *models.Seller) error {
	if err := s.validator.Validate(ctx, seller); err != nil {
		return fmt.Errorf("error during seller validation before updating: %w", err)
	}

	return s.sellers.UpdateSeller(ctx, *seller)
}

func (s *sellerService) GetSellerProducts(ctx context.Context, uid string) ([]models.Product, error) {
	return s.products.GetProductsBySeller(ctx, uid)
}
