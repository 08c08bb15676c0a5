package service

import (
	"context"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Cache
}

func NewCategoryService(repo repository.CategoryRepository, c cache.Cache) CategoryService {
	return &categoryService{repo: repo, cache: c}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "Category")
	}

	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Category")
	}

	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	category := &models.Category{
		Name:     req.Name,
		Priority: req.Priority,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, storeError(ctx, err, "Category")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Category")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Priority != nil {
		category.Priority = *req.Priority
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, storeError(ctx, err, "Category")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)

	return category, nil
}

// DeleteCategory leaves the category's products uncategorised.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return storeError(ctx, err, "Category")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)

	return nil
}
