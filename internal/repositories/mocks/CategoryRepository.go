package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	return get[*models.Category](args, 0), args.Error(1)
}

func (m *CategoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	return get[[]*models.Category](args, 0), args.Error(1)
}
