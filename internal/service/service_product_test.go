package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/feira-digital/mercado-api/internal/logger"
	"github.com/feira-digital/mercado-api/internal/mock"
	"github.com/feira-digital/mercado-api/internal/validators"
	"github.com/feira-digital/mercado-api/models"
)

func newTestProductSvc(t *testing.T) (ProductService, *mock.MockProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	products := mock.NewMockProductRepository(ctrl)
	svc := NewProductService(products, validators.NewEntityValidator(), logger.Nop())

	return svc, products
}

func validProduct() *models.Product {
	return &models.Product{
		VendedorUID: "v1",
		Nome:        "Pao",
		Preco:       5.5,
		Descricao:   "fresco",
		ImagemURL:   "http://x/y.png",
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	svc, products := newTestProductSvc(t)

	product := validProduct()
	products.EXPECT().CreateProduct(gomock.Any(), *product).Return(int64(42), nil)

	id, err := svc.CreateProduct(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestProductService_CreateProduct_InvalidPayloadNeverHitsStore(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	product := validProduct()
	product.Preco = -1

	_, err := svc.CreateProduct(context.Background(), product)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestProductService_UpdateProduct(t *testing.T) {
	svc, products := newTestProductSvc(t)

	product := validProduct()
	product.ID = 7
	products.EXPECT().UpdateProduct(gomock.Any(), *product).Return(nil)

	require.NoError(t, svc.UpdateProduct(context.Background(), product))
}

func TestProductService_UpdateProduct_RequiresPositiveID(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	product := validProduct() // ID left zero

	err := svc.UpdateProduct(context.Background(), product)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestProductService_GetProduct_PassesThrough(t *testing.T) {
	svc, products := newTestProductSvc(t)

	want := models.Product{ID: 7, VendedorUID: "v1", Nome: "Pao", Preco: 5.5}
	products.EXPECT().GetProduct(gomock.Any(), int64(7)).Return(want, nil)

	got, err := svc.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_DeleteProduct_PassesThrough(t *testing.T) {
	svc, products := newTestProductSvc(t)

	products.EXPECT().DeleteProduct(gomock.Any(), int64(7)).Return(nil)

	require.NoError(t, svc.DeleteProduct(context.Background(), 7))
}
