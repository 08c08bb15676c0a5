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

func TestImportLicenses(t *testing.T) {
	t.Run("Success - Merges list and text, skips blanks and repeats", func(t *testing.T) {
		licenseRepo := new(mocks.LicenseRepository)
		productRepo := new(mocks.ProductRepository)
		c := new(cacheMocks.Cache)
		licenseService := service.NewLicenseService(licenseRepo, productRepo, c)

		req := &models.ImportLicensesRequest{
			Keys: []string{"AAA", " BBB "},
			Text: "CCC\n\n  \nAAA\r\nDDD",
		}

		productRepo.On("GetProductByID", mock.Anything, "p1").Return(&models.Product{ID: "p1"}, nil).Once()
		licenseRepo.On("ImportLicenses", mock.Anything, "p1", []string{"AAA", "BBB", "CCC", "DDD"}).Return(3, nil).Once()
		c.On("Delete", mock.Anything, cache.CatalogKey).Return(nil).Once()

		resp, err := licenseService.ImportLicenses(t.Context(), "p1", req)

		require.NoError(t, err)
		assert.Equal(t, &models.ImportLicensesResponse{Inserted: 3, Skipped: 2}, resp)
		licenseRepo.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("Fail - Nothing to import", func(t *testing.T) {
		licenseService := service.NewLicenseService(new(mocks.LicenseRepository), new(mocks.ProductRepository), nil)

		_, err := licenseService.ImportLicenses(t.Context(), "p1", &models.ImportLicensesRequest{Text: "\n \n"})

		assertAppError(t, err, appErrors.ErrCodeValidation, http.StatusBadRequest)
	})

	t.Run("Fail - Unknown product", func(t *testing.T) {
		productRepo := new(mocks.ProductRepository)
		licenseService := service.NewLicenseService(new(mocks.LicenseRepository), productRepo, nil)

		productRepo.On("GetProductByID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound).Once()

		_, err := licenseService.ImportLicenses(t.Context(), "ghost", &models.ImportLicensesRequest{Keys: []string{"AAA"}})

		assertAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound)
	})
}

func TestListAndDeleteLicenses(t *testing.T) {
	licenseRepo := new(mocks.LicenseRepository)
	licenseService := service.NewLicenseService(licenseRepo, new(mocks.ProductRepository), nil)

	licenseRepo.On("ListLicenses", mock.Anything, "p1", models.LicenseStatusAvailable, 1, 20).
		Return([]*models.License{{ID: "l-1", Key: "AAA"}}, 1, nil).Once()
	licenseRepo.On("DeleteLicense", mock.Anything, "l-1").Return(nil).Once()
	licenseRepo.On("DeleteLicense", mock.Anything, "l-sold").Return(repository.ErrNotFound).Once()

	licenses, total, err := licenseService.ListLicenses(t.Context(), "p1", models.LicenseStatusAvailable, 1, 20)
	require.NoError(t, err)
	assert.Len(t, licenses, 1)
	assert.Equal(t, 1, total)

	assert.NoError(t, licenseService.DeleteLicense(t.Context(), "l-1"))
	assertAppError(t, licenseService.DeleteLicense(t.Context(), "l-sold"), appErrors.ErrCodeNotFound, http.StatusNotFound)

	licenseRepo.AssertExpectations(t)
}
