package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/geekfaka/storefront/internal/api/middleware"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/metrics"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

type CouponService interface {
	// ValidateCoupon decides whether code may be used on productID. It never
	// mutates the coupon.
	ValidateCoupon(ctx context.Context, code, productID string) (*models.CouponAcceptance, error)
	// EvaluateCoupon runs the same checks as ValidateCoupon and returns the
	// full coupon for pricing.
	EvaluateCoupon(ctx context.Context, code, productID string) (*models.Coupon, error)
	ListCoupons(ctx context.Context, page, pageSize int) ([]*models.Coupon, int, error)
	GetCoupon(ctx context.Context, id string) (*models.Coupon, error)
	CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, req *models.UpdateCouponRequest) (*models.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

type couponService struct {
	couponRepo  repository.CouponRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewCouponService(couponRepo repository.CouponRepository, productRepo repository.ProductRepository) CouponService {
	return &couponService{
		couponRepo:  couponRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

func (s *couponService) ValidateCoupon(ctx context.Context, code, productID string) (*models.CouponAcceptance, error) {

	coupon, err := s.EvaluateCoupon(ctx, code, productID)
	if err != nil {
		return nil, err
	}

	return &models.CouponAcceptance{
		ID:            coupon.ID,
		Code:          coupon.Code,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
	}, nil
}

func (s *couponService) EvaluateCoupon(ctx context.Context, code, productID string) (*models.Coupon, error) {

	coupon, err := s.evaluate(ctx, code, productID)

	outcome := "accepted"
	if appErr, ok := appErrors.IsAppError(err); ok {
		outcome = appErr.Code
	}
	metrics.CouponValidations.WithLabelValues(outcome).Inc()

	return coupon, err
}

// evaluate applies the eligibility rules in order; the first failing rule
// decides the rejection.
func (s *couponService) evaluate(ctx context.Context, code, productID string) (*models.Coupon, error) {

	logger := middleware.LoggerFromContext(ctx)

	code = models.NormalizeCouponCode(code)
	if code == "" {
		return nil, appErrors.MissingCodeError()
	}

	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.CouponNotFoundError().WithError(err)
		}

		logger.Error("Coupon lookup failed", slog.String("code", code), slog.String("error", err.Error()))
		return nil, appErrors.InternalError("Validation failed").WithError(err)
	}

	now := s.now()

	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, appErrors.CouponNotYetValidError()
	}

	if coupon.ValidUntil != nil && now.After(*coupon.ValidUntil) {
		return nil, appErrors.CouponExpiredError()
	}

	if !coupon.IsReusable && coupon.IsUsed {
		return nil, appErrors.CouponAlreadyUsedError()
	}

	if coupon.ProductID != nil && *coupon.ProductID != productID {
		return nil, appErrors.CouponProductMismatchError()
	}

	if coupon.CategoryID != nil {
		// A product without a category never matches a category scope.
		if productID == "" {
			return nil, appErrors.CouponCategoryMismatchError()
		}

		categoryID, err := s.productRepo.GetProductCategoryID(ctx, productID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			logger.Error("Product category lookup failed", slog.String("product_id", productID), slog.String("error", err.Error()))
			return nil, appErrors.InternalError("Validation failed").WithError(err)
		}

		if categoryID == nil || *categoryID != *coupon.CategoryID {
			return nil, appErrors.CouponCategoryMismatchError()
		}
	}

	return coupon, nil
}

func (s *couponService) ListCoupons(ctx context.Context, page, pageSize int) ([]*models.Coupon, int, error) {

	coupons, total, err := s.couponRepo.ListCoupons(ctx, page, pageSize)
	if err != nil {
		return nil, 0, storeError(ctx, err, "Coupon")
	}

	return coupons, total, nil
}

func (s *couponService) GetCoupon(ctx context.Context, id string) (*models.Coupon, error) {

	coupon, err := s.couponRepo.GetCouponByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Coupon")
	}

	return coupon, nil
}

func (s *couponService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {

	coupon := &models.Coupon{
		Code:          models.NormalizeCouponCode(req.Code),
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		IsReusable:    req.IsReusable,
		ProductID:     blankToNil(req.ProductID),
		CategoryID:    blankToNil(req.CategoryID),
	}

	if coupon.Code == "" {
		return nil, appErrors.AddValidationError("code", "must not be blank")
	}

	if req.ValidFrom != nil {
		t := req.ValidFrom.Start()
		coupon.ValidFrom = &t
	}

	if req.ValidUntil != nil {
		t := req.ValidUntil.End()
		coupon.ValidUntil = &t
	}

	if err := checkCouponTerms(coupon); err != nil {
		return nil, err
	}

	if err := s.couponRepo.CreateCoupon(ctx, coupon); err != nil {
		return nil, storeError(ctx, err, "Coupon")
	}

	return coupon, nil
}

func (s *couponService) UpdateCoupon(ctx context.Context, id string, req *models.UpdateCouponRequest) (*models.Coupon, error) {

	coupon, err := s.couponRepo.GetCouponByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Coupon")
	}

	if req.DiscountType != nil {
		coupon.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		coupon.DiscountValue = *req.DiscountValue
	}
	if req.ValidFrom != nil {
		t := req.ValidFrom.Start()
		coupon.ValidFrom = &t
	}
	if req.ValidUntil != nil {
		t := req.ValidUntil.End()
		coupon.ValidUntil = &t
	}
	if req.IsReusable != nil {
		coupon.IsReusable = *req.IsReusable
	}
	if req.IsUsed != nil {
		coupon.IsUsed = *req.IsUsed
	}
	if req.ProductID != nil {
		coupon.ProductID = blankToNil(req.ProductID)
	}
	if req.CategoryID != nil {
		coupon.CategoryID = blankToNil(req.CategoryID)
	}

	if err := checkCouponTerms(coupon); err != nil {
		return nil, err
	}

	if err := s.couponRepo.UpdateCoupon(ctx, coupon); err != nil {
		return nil, storeError(ctx, err, "Coupon")
	}

	return coupon, nil
}

func (s *couponService) DeleteCoupon(ctx context.Context, id string) error {

	if err := s.couponRepo.DeleteCoupon(ctx, id); err != nil {
		return storeError(ctx, err, "Coupon")
	}

	return nil
}

var hundred = decimal.NewFromInt(100)

func checkCouponTerms(c *models.Coupon) error {
	if c.DiscountType == models.DiscountTypePercentage && c.DiscountValue.GreaterThan(hundred) {
		return appErrors.AddValidationError("discountValue", "a percentage cannot exceed 100")
	}

	if c.ValidFrom != nil && c.ValidUntil != nil && c.ValidUntil.Before(*c.ValidFrom) {
		return appErrors.AddValidationError("validUntil", "must not be before validFrom")
	}

	return nil
}
