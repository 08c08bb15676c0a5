package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ListCatalog(ctx context.Context) ([]*models.CatalogCategory, error) {
	args := m.Called(ctx)
	return get[[]*models.CatalogCategory](args, 0), args.Error(1)
}
