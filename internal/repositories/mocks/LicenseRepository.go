package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type LicenseRepository struct {
	mock.Mock
}

func (m *LicenseRepository) ImportLicenses(ctx context.Context, productID string, keys []string) (int, error) {
	args := m.Called(ctx, productID, keys)
	return args.Int(0), args.Error(1)
}

func (m *LicenseRepository) ListLicenses(ctx context.Context, productID string, status models.LicenseStatus, page, size int) ([]*models.License, int, error) {
	args := m.Called(ctx, productID, status, page, size)
	return get[[]*models.License](args, 0), args.Int(1), args.Error(2)
}

func (m *LicenseRepository) CountAvailable(ctx context.Context, productID string) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *LicenseRepository) DeleteLicense(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
