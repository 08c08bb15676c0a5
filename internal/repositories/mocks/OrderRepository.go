package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Checkout(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) SetPaymentIntent(ctx context.Context, orderID, paymentIntentID string) error {
	return m.Called(ctx, orderID, paymentIntentID).Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	return get[*models.Order](args, 0), args.Error(1)
}

func (m *OrderRepository) GetOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	args := m.Called(ctx, paymentIntentID)
	return get[*models.Order](args, 0), args.Error(1)
}

func (m *OrderRepository) MarkPaid(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *OrderRepository) MarkDelivered(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *OrderRepository) CancelOrder(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *OrderRepository) ListOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]*models.Order, int, error) {
	args := m.Called(ctx, status, page, size)
	return get[[]*models.Order](args, 0), args.Int(1), args.Error(2)
}
