package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, req)
	return get[*models.CheckoutResponse](args, 0), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, id, email string) (*models.Order, error) {
	args := m.Called(ctx, id, email)
	return get[*models.Order](args, 0), args.Error(1)
}

func (m *OrderService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.Called(ctx, payload, signature).Error(0)
}

func (m *OrderService) ListOrders(ctx context.Context, status models.OrderStatus, page, pageSize int) ([]*models.Order, int, error) {
	args := m.Called(ctx, status, page, pageSize)
	return get[[]*models.Order](args, 0), args.Int(1), args.Error(2)
}

func (m *OrderService) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	return get[*models.Order](args, 0), args.Error(1)
}

func (m *OrderService) DeliverOrder(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	return get[*models.Order](args, 0), args.Error(1)
}
