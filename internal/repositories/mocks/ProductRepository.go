package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	return get[*models.Product](args, 0), args.Error(1)
}

func (m *ProductRepository) GetProductCategoryID(ctx context.Context, id string) (*string, error) {
	args := m.Called(ctx, id)
	return get[*string](args, 0), args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	args := m.Called(ctx, page, size)
	return get[[]*models.Product](args, 0), args.Int(1), args.Error(2)
}
