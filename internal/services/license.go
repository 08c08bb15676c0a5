package service

import (
	"context"
	"strings"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
)

type LicenseService interface {
	// ImportLicenses adds keys to a product's stock. Blank lines and keys the
	// product already holds are skipped.
	ImportLicenses(ctx context.Context, productID string, req *models.ImportLicensesRequest) (*models.ImportLicensesResponse, error)
	ListLicenses(ctx context.Context, productID string, status models.LicenseStatus, page, pageSize int) ([]*models.License, int, error)
	DeleteLicense(ctx context.Context, id string) error
}

type licenseService struct {
	licenseRepo repository.LicenseRepository
	productRepo repository.ProductRepository
	cache       cache.Cache
}

func NewLicenseService(licenseRepo repository.LicenseRepository, productRepo repository.ProductRepository, c cache.Cache) LicenseService {
	return &licenseService{licenseRepo: licenseRepo, productRepo: productRepo, cache: c}
}

func (s *licenseService) ImportLicenses(ctx context.Context, productID string, req *models.ImportLicensesRequest) (*models.ImportLicensesResponse, error) {

	candidates := append([]string{}, req.Keys...)
	candidates = append(candidates, strings.Split(req.Text, "\n")...)

	var submitted int
	keys := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, k := range candidates {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}

		submitted++

		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	if len(keys) == 0 {
		return nil, appErrors.ValidationError("No license keys supplied")
	}

	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		return nil, storeError(ctx, err, "Product")
	}

	inserted, err := s.licenseRepo.ImportLicenses(ctx, productID, keys)
	if err != nil {
		return nil, storeError(ctx, err, "License")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)

	return &models.ImportLicensesResponse{
		Inserted: inserted,
		Skipped:  submitted - inserted,
	}, nil
}

func (s *licenseService) ListLicenses(ctx context.Context, productID string, status models.LicenseStatus, page, pageSize int) ([]*models.License, int, error) {

	licenses, total, err := s.licenseRepo.ListLicenses(ctx, productID, status, page, pageSize)
	if err != nil {
		return nil, 0, storeError(ctx, err, "License")
	}

	return licenses, total, nil
}

// DeleteLicense only removes keys that are still AVAILABLE.
func (s *licenseService) DeleteLicense(ctx context.Context, id string) error {

	if err := s.licenseRepo.DeleteLicense(ctx, id); err != nil {
		return storeError(ctx, err, "License")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)

	return nil
}
