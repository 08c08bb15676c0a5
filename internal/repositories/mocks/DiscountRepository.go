package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type DiscountRepository struct {
	mock.Mock
}

func (m *DiscountRepository) ListDiscounts(ctx context.Context) ([]*models.Discount, error) {
	args := m.Called(ctx)
	return get[[]*models.Discount](args, 0), args.Error(1)
}

func (m *DiscountRepository) GetDiscountByID(ctx context.Context, id string) (*models.Discount, error) {
	args := m.Called(ctx, id)
	return get[*models.Discount](args, 0), args.Error(1)
}

func (m *DiscountRepository) GetDiscountForProduct(ctx context.Context, productID string) (*models.Discount, error) {
	args := m.Called(ctx, productID)
	return get[*models.Discount](args, 0), args.Error(1)
}

func (m *DiscountRepository) CreateDiscount(ctx context.Context, discount *models.Discount, productIDs []string) error {
	return m.Called(ctx, discount, productIDs).Error(0)
}

func (m *DiscountRepository) UpdateDiscount(ctx context.Context, discount *models.Discount, productIDs *[]string) error {
	return m.Called(ctx, discount, productIDs).Error(0)
}

func (m *DiscountRepository) DeleteDiscount(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
