package service_test

import (
	"net/http"
	"testing"

	"github.com/geekfaka/storefront/internal/cache"
	cacheMocks "github.com/geekfaka/storefront/internal/cache/mocks"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/geekfaka/storefront/internal/repositories/mocks"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService(t *testing.T) {
	t.Run("Success - Create invalidates catalog", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		c := new(cacheMocks.Cache)
		categoryService := service.NewCategoryService(repo, c)

		repo.On("CreateCategory", mock.Anything, &models.Category{Name: "Games", Priority: 5}).Return(nil).Once()
		c.On("Delete", mock.Anything, cache.CatalogKey).Return(nil).Once()

		category, err := categoryService.CreateCategory(t.Context(), &models.CreateCategoryRequest{Name: "Games", Priority: 5})

		require.NoError(t, err)
		assert.Equal(t, 5, category.Priority)
		repo.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("Fail - Duplicate name", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		categoryService := service.NewCategoryService(repo, nil)

		repo.On("CreateCategory", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := categoryService.CreateCategory(t.Context(), &models.CreateCategoryRequest{Name: "Games"})

		assertAppError(t, err, appErrors.ErrCodeDuplicateEntry, http.StatusConflict)
	})

	t.Run("Success - Update applies only supplied fields", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		categoryService := service.NewCategoryService(repo, nil)

		repo.On("GetCategoryByID", mock.Anything, "cat-1").Return(&models.Category{ID: "cat-1", Name: "Games", Priority: 1}, nil).Once()
		repo.On("UpdateCategory", mock.Anything, &models.Category{ID: "cat-1", Name: "Games", Priority: 9}).Return(nil).Once()

		category, err := categoryService.UpdateCategory(t.Context(), "cat-1", &models.UpdateCategoryRequest{Priority: ptr(9)})

		require.NoError(t, err)
		assert.Equal(t, "Games", category.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Success - List, get and delete", func(t *testing.T) {
		repo := new(mocks.CategoryRepository)
		categoryService := service.NewCategoryService(repo, nil)

		repo.On("ListCategories", mock.Anything).Return([]*models.Category{{ID: "cat-1"}}, nil).Once()
		repo.On("GetCategoryByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()
		repo.On("DeleteCategory", mock.Anything, "cat-1").Return(nil).Once()

		categories, err := categoryService.ListCategories(t.Context())
		require.NoError(t, err)
		assert.Len(t, categories, 1)

		_, err = categoryService.GetCategory(t.Context(), "missing")
		assertAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound)

		assert.NoError(t, categoryService.DeleteCategory(t.Context(), "cat-1"))
		repo.AssertExpectations(t)
	})
}
