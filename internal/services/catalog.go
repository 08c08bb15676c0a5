package service

import (
	"context"
	"time"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/metrics"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
)

type CatalogService interface {
	// GetCatalog lists categories by priority with their active products,
	// stock and the price after any effective discount.
	GetCatalog(ctx context.Context) ([]*models.CatalogCategory, error)
	// GetProduct is the storefront view of one active product.
	GetProduct(ctx context.Context, id string) (*models.CatalogProduct, error)
}

type catalogService struct {
	catalogRepo  repository.CatalogRepository
	productRepo  repository.ProductRepository
	discountRepo repository.DiscountRepository
	licenseRepo  repository.LicenseRepository
	cache        cache.Cache
	ttl          time.Duration
	now          func() time.Time
}

func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	productRepo repository.ProductRepository,
	discountRepo repository.DiscountRepository,
	licenseRepo repository.LicenseRepository,
	c cache.Cache,
	ttl time.Duration,
) CatalogService {
	return &catalogService{
		catalogRepo:  catalogRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		licenseRepo:  licenseRepo,
		cache:        c,
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *catalogService) GetCatalog(ctx context.Context) ([]*models.CatalogCategory, error) {

	logger := middleware.LoggerFromContext(ctx)

	categories, hit, err := cache.Remember(ctx, s.cache, logger, cache.CatalogKey, s.ttl, s.catalogRepo.ListCatalog)
	if err != nil {
		return nil, storeError(ctx, err, "Catalog")
	}

	if hit {
		metrics.CatalogCache.WithLabelValues("hit").Inc()
	} else {
		metrics.CatalogCache.WithLabelValues("miss").Inc()
	}

	// Final prices depend on the clock, so they are never cached.
	now := s.now()
	for _, category := range categories {
		for i := range category.Products {
			p := &category.Products[i]
			p.FinalPrice = discountedPrice(p.Price, p.Discount, now)
		}
	}

	return categories, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.CatalogProduct, error) {

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Product")
	}

	if !product.IsActive {
		return nil, appErrors.NotFoundError("Product not found")
	}

	stock, err := s.licenseRepo.CountAvailable(ctx, product.ID)
	if err != nil {
		return nil, storeError(ctx, err, "License")
	}

	discount, err := s.discountRepo.GetDiscountForProduct(ctx, product.ID)
	if err != nil {
		return nil, storeError(ctx, err, "Discount")
	}

	view := &models.CatalogProduct{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Stock:         stock,
		EnableCoupons: product.EnableCoupons,
	}

	if discount != nil {
		view.Discount = &models.CatalogDiscount{
			Type:      discount.Type,
			Value:     discount.Value,
			IsActive:  discount.IsActive,
			StartDate: discount.StartDate,
			EndDate:   discount.EndDate,
		}
	}

	view.FinalPrice = discountedPrice(view.Price, view.Discount, s.now())

	return view, nil
}
