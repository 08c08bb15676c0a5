package service

import (
	"context"
	"errors"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
)

type DiscountService interface {
	ListDiscounts(ctx context.Context) ([]*models.Discount, error)
	GetDiscount(ctx context.Context, id string) (*models.Discount, error)
	CreateDiscount(ctx context.Context, req *models.CreateDiscountRequest) (*models.Discount, error)
	// UpdateDiscount replaces product membership wholesale when the request
	// carries a product list; an omitted list leaves membership untouched.
	UpdateDiscount(ctx context.Context, id string, req *models.UpdateDiscountRequest) (*models.Discount, error)
	// DeleteDiscount unlinks every member product before removing the discount.
	DeleteDiscount(ctx context.Context, id string) error
}

type discountService struct {
	repo  repository.DiscountRepository
	cache cache.Cache
}

func NewDiscountService(repo repository.DiscountRepository, c cache.Cache) DiscountService {
	return &discountService{repo: repo, cache: c}
}

func (s *discountService) ListDiscounts(ctx context.Context) ([]*models.Discount, error) {

	discounts, err := s.repo.ListDiscounts(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "Discount")
	}

	return discounts, nil
}

func (s *discountService) GetDiscount(ctx context.Context, id string) (*models.Discount, error) {

	discount, err := s.repo.GetDiscountByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Discount")
	}

	return discount, nil
}

func (s *discountService) CreateDiscount(ctx context.Context, req *models.CreateDiscountRequest) (*models.Discount, error) {

	discount := &models.Discount{
		Name:      req.Name,
		Type:      req.Type,
		Value:     req.Value,
		StartDate: req.StartDate.Start(),
		EndDate:   req.EndDate.End(),
		IsActive:  true,
	}

	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	if err := checkDiscountTerms(discount); err != nil {
		return nil, err
	}

	productIDs := dedupe(req.ProductIDs)

	if err := s.repo.CreateDiscount(ctx, discount, productIDs); err != nil {
		return nil, discountStoreError(ctx, err)
	}

	discount.ProductIDs = productIDs
	discount.ProductCount = len(productIDs)

	s.invalidateCatalog(ctx)

	return discount, nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, id string, req *models.UpdateDiscountRequest) (*models.Discount, error) {

	discount, err := s.repo.GetDiscountByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Discount")
	}

	if req.Name != nil {
		discount.Name = *req.Name
	}
	if req.Type != nil {
		discount.Type = *req.Type
	}
	if req.Value != nil {
		discount.Value = *req.Value
	}
	if req.StartDate != nil {
		discount.StartDate = req.StartDate.Start()
	}
	if req.EndDate != nil {
		discount.EndDate = req.EndDate.End()
	}
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	if err := checkDiscountTerms(discount); err != nil {
		return nil, err
	}

	var productIDs *[]string
	if req.ProductIDs != nil {
		ids := dedupe(*req.ProductIDs)
		productIDs = &ids
	}

	if err := s.repo.UpdateDiscount(ctx, discount, productIDs); err != nil {
		return nil, discountStoreError(ctx, err)
	}

	if productIDs != nil {
		discount.ProductIDs = *productIDs
		discount.ProductCount = len(*productIDs)
	}

	s.invalidateCatalog(ctx)

	return discount, nil
}

func (s *discountService) DeleteDiscount(ctx context.Context, id string) error {

	if err := s.repo.DeleteDiscount(ctx, id); err != nil {
		return storeError(ctx, err, "Discount")
	}

	s.invalidateCatalog(ctx)

	return nil
}

func (s *discountService) invalidateCatalog(ctx context.Context) {
	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)
}

func discountStoreError(ctx context.Context, err error) error {
	if errors.Is(err, repository.ErrUnknownProducts) {
		return appErrors.BadRequestError("One or more products do not exist").WithError(err)
	}

	return storeError(ctx, err, "Discount")
}

func checkDiscountTerms(d *models.Discount) error {
	if d.Type == models.DiscountTypePercentage && d.Value.GreaterThan(hundred) {
		return appErrors.AddValidationError("value", "a percentage cannot exceed 100")
	}

	if d.EndDate.Before(d.StartDate) {
		return appErrors.AddValidationError("endDate", "must not be before startDate")
	}

	return nil
}

// dedupe keeps the first occurrence of every id, preserving order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
