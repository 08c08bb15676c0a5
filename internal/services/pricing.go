package service

import (
	"context"
	"time"

	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

type PricingService interface {
	// Quote prices one unit of product: the effective discount first, then
	// the coupon if a code is given, then rounding.
	Quote(ctx context.Context, product *models.Product, couponCode string) (*models.Quote, error)
}

type pricingService struct {
	discountRepo repository.DiscountRepository
	coupons      CouponService
	now          func() time.Time
}

func NewPricingService(discountRepo repository.DiscountRepository, coupons CouponService) PricingService {
	return &pricingService{
		discountRepo: discountRepo,
		coupons:      coupons,
		now:          time.Now,
	}
}

func (s *pricingService) Quote(ctx context.Context, product *models.Product, couponCode string) (*models.Quote, error) {

	quote := &models.Quote{OriginalPrice: product.Price}
	price := product.Price

	discount, err := s.discountRepo.GetDiscountForProduct(ctx, product.ID)
	if err != nil {
		return nil, storeError(ctx, err, "Discount")
	}

	if discount != nil && discount.EffectiveAt(s.now()) {
		price = discount.Type.Apply(price, discount.Value)
	}

	if models.NormalizeCouponCode(couponCode) != "" {
		if !product.EnableCoupons {
			return nil, appErrors.CouponsDisabledError()
		}

		coupon, err := s.coupons.EvaluateCoupon(ctx, couponCode, product.ID)
		if err != nil {
			return nil, err
		}

		price = coupon.DiscountType.Apply(price, coupon.DiscountValue)
		quote.Coupon = coupon
	}

	quote.FinalPrice = models.RoundPrice(price)

	return quote, nil
}

// discountedPrice is the catalog price of a product under an optional discount.
func discountedPrice(price decimal.Decimal, d *models.CatalogDiscount, now time.Time) decimal.Decimal {
	if d == nil || !d.EffectiveAt(now) {
		return models.RoundPrice(price)
	}

	return models.RoundPrice(d.Type.Apply(price, d.Value))
}
