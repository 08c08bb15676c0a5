package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, req *models.EmailRequest) error {
	return m.Called(ctx, req).Error(0)
}
