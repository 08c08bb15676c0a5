package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CouponRepository struct {
	mock.Mock
}

func (m *CouponRepository) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	args := m.Called(ctx, code)
	return get[*models.Coupon](args, 0), args.Error(1)
}

func (m *CouponRepository) GetCouponByID(ctx context.Context, id string) (*models.Coupon, error) {
	args := m.Called(ctx, id)
	return get[*models.Coupon](args, 0), args.Error(1)
}

func (m *CouponRepository) ListCoupons(ctx context.Context, page, size int) ([]*models.Coupon, int, error) {
	args := m.Called(ctx, page, size)
	return get[[]*models.Coupon](args, 0), args.Int(1), args.Error(2)
}

func (m *CouponRepository) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *CouponRepository) UpdateCoupon(ctx context.Context, coupon *models.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *CouponRepository) DeleteCoupon(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
