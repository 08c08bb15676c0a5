package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CouponService struct {
	mock.Mock
}

func (m *CouponService) ValidateCoupon(ctx context.Context, code, productID string) (*models.CouponAcceptance, error) {
	args := m.Called(ctx, code, productID)
	return get[*models.CouponAcceptance](args, 0), args.Error(1)
}

func (m *CouponService) EvaluateCoupon(ctx context.Context, code, productID string) (*models.Coupon, error) {
	args := m.Called(ctx, code, productID)
	return get[*models.Coupon](args, 0), args.Error(1)
}

func (m *CouponService) ListCoupons(ctx context.Context, page, pageSize int) ([]*models.Coupon, int, error) {
	args := m.Called(ctx, page, pageSize)
	return get[[]*models.Coupon](args, 0), args.Int(1), args.Error(2)
}

func (m *CouponService) GetCoupon(ctx context.Context, id string) (*models.Coupon, error) {
	args := m.Called(ctx, id)
	return get[*models.Coupon](args, 0), args.Error(1)
}

func (m *CouponService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {
	args := m.Called(ctx, req)
	return get[*models.Coupon](args, 0), args.Error(1)
}

func (m *CouponService) UpdateCoupon(ctx context.Context, id string, req *models.UpdateCouponRequest) (*models.Coupon, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Coupon](args, 0), args.Error(1)
}

func (m *CouponService) DeleteCoupon(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
