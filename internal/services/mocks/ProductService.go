package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductService struct {
	mock.Mock
}

func (m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductService) ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {
	args := m.Called(ctx, page, pageSize)
	return get[[]*models.Product](args, 0), args.Int(1), args.Error(2)
}
