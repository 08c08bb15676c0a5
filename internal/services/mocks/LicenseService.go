package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type LicenseService struct {
	mock.Mock
}

func (m *LicenseService) ImportLicenses(ctx context.Context, productID string, req *models.ImportLicensesRequest) (*models.ImportLicensesResponse, error) {
	args := m.Called(ctx, productID, req)
	return get[*models.ImportLicensesResponse](args, 0), args.Error(1)
}

func (m *LicenseService) ListLicenses(ctx context.Context, productID string, status models.LicenseStatus, page, pageSize int) ([]*models.License, int, error) {
	args := m.Called(ctx, productID, status, page, pageSize)
	return get[[]*models.License](args, 0), args.Int(1), args.Error(2)
}

func (m *LicenseService) DeleteLicense(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
