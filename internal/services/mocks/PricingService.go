package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type PricingService struct {
	mock.Mock
}

func (m *PricingService) Quote(ctx context.Context, product *models.Product, couponCode string) (*models.Quote, error) {
	args := m.Called(ctx, product, couponCode)
	return get[*models.Quote](args, 0), args.Error(1)
}
