package service

import (
	"context"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, c cache.Cache) ProductService {
	return &productService{repo: repo, cache: c}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         models.RoundPrice(req.Price),
		IsActive:      true,
		CategoryID:    blankToNil(req.CategoryID),
		EnableCoupons: true,
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.EnableCoupons != nil {
		product.EnableCoupons = *req.EnableCoupons
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, storeError(ctx, err, "Product")
	}

	s.invalidateCatalog(ctx)

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Product")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Product")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = models.RoundPrice(*req.Price)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.CategoryID != nil {
		product.CategoryID = blankToNil(req.CategoryID)
	}
	if req.EnableCoupons != nil {
		product.EnableCoupons = *req.EnableCoupons
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, storeError(ctx, err, "Product")
	}

	s.invalidateCatalog(ctx)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return storeError(ctx, err, "Product")
	}

	s.invalidateCatalog(ctx)

	return nil
}

// page means "page number requested"
// pageSize means "number of products to be displayed per page"
func (s *productService) ListProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {

	products, total, err := s.repo.ListProducts(ctx, page, pageSize)
	if err != nil {
		return nil, 0, storeError(ctx, err, "Product")
	}

	return products, total, nil
}

func (s *productService) invalidateCatalog(ctx context.Context) {
	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)
}
