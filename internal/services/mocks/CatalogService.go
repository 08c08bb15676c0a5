package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) GetCatalog(ctx context.Context) ([]*models.CatalogCategory, error) {
	args := m.Called(ctx)
	return get[[]*models.CatalogCategory](args, 0), args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id string) (*models.CatalogProduct, error) {
	args := m.Called(ctx, id)
	return get[*models.CatalogProduct](args, 0), args.Error(1)
}
