package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	return get[[]*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
