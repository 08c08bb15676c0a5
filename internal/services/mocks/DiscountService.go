package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type DiscountService struct {
	mock.Mock
}

func (m *DiscountService) ListDiscounts(ctx context.Context) ([]*models.Discount, error) {
	args := m.Called(ctx)
	return get[[]*models.Discount](args, 0), args.Error(1)
}

func (m *DiscountService) GetDiscount(ctx context.Context, id string) (*models.Discount, error) {
	args := m.Called(ctx, id)
	return get[*models.Discount](args, 0), args.Error(1)
}

func (m *DiscountService) CreateDiscount(ctx context.Context, req *models.CreateDiscountRequest) (*models.Discount, error) {
	args := m.Called(ctx, req)
	return get[*models.Discount](args, 0), args.Error(1)
}

func (m *DiscountService) UpdateDiscount(ctx context.Context, id string, req *models.UpdateDiscountRequest) (*models.Discount, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Discount](args, 0), args.Error(1)
}

func (m *DiscountService) DeleteDiscount(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
