package service_test

import (
	"net/http"
	"testing"
	"time"

	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	"github.com/geekfaka/storefront/internal/repositories/mocks"
	service "github.com/geekfaka/storefront/internal/services"
	serviceMocks "github.com/geekfaka/storefront/internal/services/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeDiscount(typ models.DiscountType, value int64) *models.Discount {
	return &models.Discount{
		Type: typ, Value: decimal.NewFromInt(value), IsActive: true,
		StartDate: time.Now().Add(-time.Hour), EndDate: time.Now().Add(time.Hour),
	}
}

func TestQuote(t *testing.T) {
	product := func() *models.Product {
		return &models.Product{ID: "p1", Price: decimal.RequireFromString("100.00"), IsActive: true, EnableCoupons: true}
	}

	tests := []struct {
		name      string
		product   *models.Product
		discount  *models.Discount
		code      string
		coupon    *models.Coupon
		couponErr error
		want      string
		wantCode  string
	}{
		{
			name:    "No discount, no coupon",
			product: product(),
			want:    "100",
		},
		{
			name:     "Discount then coupon",
			product:  product(),
			discount: activeDiscount(models.DiscountTypePercentage, 20),
			code:     "save10",
			coupon:   &models.Coupon{ID: "c-1", DiscountType: models.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(10)},
			want:     "72",
		},
		{
			name:     "Inactive discount is ignored",
			product:  product(),
			discount: &models.Discount{Type: models.DiscountTypeFixed, Value: decimal.NewFromInt(30), IsActive: false},
			want:     "100",
		},
		{
			name:     "Price never drops below zero",
			product:  product(),
			discount: activeDiscount(models.DiscountTypeFixed, 90),
			code:     "BIG",
			coupon:   &models.Coupon{ID: "c-2", DiscountType: models.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(50)},
			want:     "0",
		},
		{
			name:    "Rounds half up to cents",
			product: &models.Product{ID: "p1", Price: decimal.RequireFromString("9.99"), EnableCoupons: true},
			code:    "THIRD",
			coupon:  &models.Coupon{ID: "c-3", DiscountType: models.DiscountTypePercentage, DiscountValue: decimal.RequireFromString("33.5")},
			want:    "6.64",
		},
		{
			name:     "Coupons disabled on product",
			product:  &models.Product{ID: "p1", Price: decimal.NewFromInt(10)},
			code:     "SAVE10",
			wantCode: appErrors.ErrCodeCouponsDisabled,
		},
		{
			name:      "Coupon rejected",
			product:   product(),
			code:      "SAVE10",
			couponErr: appErrors.CouponExpiredError(),
			wantCode:  appErrors.ErrCodeExpired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			discountRepo := new(mocks.DiscountRepository)
			coupons := new(serviceMocks.CouponService)
			pricing := service.NewPricingService(discountRepo, coupons)

			discountRepo.On("GetDiscountForProduct", mock.Anything, tc.product.ID).Return(tc.discount, nil).Once()

			if tc.coupon != nil || tc.couponErr != nil {
				coupons.On("EvaluateCoupon", mock.Anything, tc.code, tc.product.ID).Return(tc.coupon, tc.couponErr).Once()
			}

			quote, err := pricing.Quote(t.Context(), tc.product, tc.code)

			if tc.wantCode != "" {
				assertAppError(t, err, tc.wantCode, http.StatusBadRequest)
				assert.Nil(t, quote)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(quote.FinalPrice), "got %s", quote.FinalPrice)
			assert.True(t, tc.product.Price.Equal(quote.OriginalPrice))
			assert.Equal(t, tc.coupon, quote.Coupon)
			coupons.AssertExpectations(t)
		})
	}
}
