package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reserveSQL     = regexp.QuoteMeta(`FOR UPDATE SKIP LOCKED`)
	redeemSQL      = regexp.QuoteMeta(`UPDATE coupons SET is_used = TRUE, use_count = use_count + 1`)
	insertOrderSQL = regexp.QuoteMeta(`INSERT INTO orders (product_id, email, original_price, final_price, coupon_id, license_id, status)`)
	markReserveSQL = regexp.QuoteMeta(`UPDATE licenses SET status = 'RESERVED', order_id = $1`)

	orderColumns = []string{"id", "product_id", "email", "original_price", "final_price", "coupon_id", "license_id",
		"status", "payment_intent_id", "created_at", "updated_at", "key"}
)

func newPendingOrder(couponID *string) *models.Order {
	return &models.Order{
		ProductID:     "p1",
		Email:         "buyer@example.com",
		OriginalPrice: decimal.NewFromInt(100),
		FinalPrice:    decimal.NewFromInt(90),
		CouponID:      couponID,
		Status:        models.OrderStatusPending,
	}
}

func TestOrderRepository_Checkout(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewOrderRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("Success - License reserved and coupon redeemed", func(t *testing.T) {
		// Arrange
		order := newPendingOrder(ptr("c1"))

		mock.ExpectBegin()
		mock.ExpectQuery(reserveSQL).WithArgs("p1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("lic-1"))
		mock.ExpectExec(redeemSQL).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(insertOrderSQL).
			WithArgs("p1", "buyer@example.com", decimal.NewFromInt(100), decimal.NewFromInt(90), "c1", "lic-1", models.OrderStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("o1", now, now))
		mock.ExpectExec(markReserveSQL).WithArgs("o1", "lic-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.Checkout(ctx, order)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
		require.NotNil(t, order.LicenseID)
		assert.Equal(t, "lic-1", *order.LicenseID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Without coupon", func(t *testing.T) {
		order := newPendingOrder(nil)

		mock.ExpectBegin()
		mock.ExpectQuery(reserveSQL).WithArgs("p1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("lic-2"))
		mock.ExpectQuery(insertOrderSQL).
			WithArgs("p1", "buyer@example.com", decimal.NewFromInt(100), decimal.NewFromInt(90), nil, "lic-2", models.OrderStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("o2", now, now))
		mock.ExpectExec(markReserveSQL).WithArgs("o2", "lic-2").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Checkout(ctx, order))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Out of stock", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(reserveSQL).WithArgs("p1").WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.Checkout(ctx, newPendingOrder(ptr("c1")))

		assert.ErrorIs(t, err, repository.ErrOutOfStock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Single-use coupon already redeemed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(reserveSQL).WithArgs("p1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("lic-1"))
		mock.ExpectExec(redeemSQL).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Checkout(ctx, newPendingOrder(ptr("c1")))

		assert.ErrorIs(t, err, repository.ErrCouponAlreadyUsed)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_Lifecycle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewOrderRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("SetPaymentIntent", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET payment_intent_id = $1`)).
			WithArgs("pi_123", "o1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetPaymentIntent(ctx, "o1", "pi_123"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetOrderByID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN licenses l ON l.id = o.license_id WHERE o.id = $1`)).
			WithArgs("o1").
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "p1", "buyer@example.com", "100", "90", "c1", "lic-1", "DELIVERED", "pi_123", now, now, "AAAA-BBBB"))

		order, err := repo.GetOrderByID(ctx, "o1")

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, order.Status)
		assert.Equal(t, "AAAA-BBBB", order.LicenseKey)
		require.NotNil(t, order.PaymentIntentID)
		assert.Equal(t, "pi_123", *order.PaymentIntentID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetOrderByPaymentIntent - Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE o.payment_intent_id = $1`)).
			WithArgs("pi_unknown").
			WillReturnRows(sqlmock.NewRows(orderColumns))

		order, err := repo.GetOrderByPaymentIntent(ctx, "pi_unknown")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MarkPaid", func(t *testing.T) {
		paidSQL := regexp.QuoteMeta(`UPDATE orders SET status = 'PAID'`)

		t.Run("Success - License sold", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(paidSQL).WithArgs("o1").
				WillReturnRows(sqlmock.NewRows([]string{"license_id"}).AddRow("lic-1"))
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE licenses SET status = 'SOLD'`)).
				WithArgs("lic-1").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			require.NoError(t, repo.MarkPaid(ctx, "o1"))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Already settled", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(paidSQL).WithArgs("o1").WillReturnRows(sqlmock.NewRows([]string{"license_id"}))
			mock.ExpectRollback()

			err := repo.MarkPaid(ctx, "o1")

			assert.ErrorIs(t, err, repository.ErrInvalidTransition)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("MarkDelivered", func(t *testing.T) {
		deliveredSQL := regexp.QuoteMeta(`UPDATE orders SET status = 'DELIVERED'`)

		mock.ExpectExec(deliveredSQL).WithArgs("o1").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.MarkDelivered(ctx, "o1"))

		mock.ExpectExec(deliveredSQL).WithArgs("o2").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.MarkDelivered(ctx, "o2"), repository.ErrInvalidTransition)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CancelOrder", func(t *testing.T) {
		cancelSQL := regexp.QuoteMeta(`UPDATE orders SET status = 'CANCELLED'`)

		t.Run("Success - License and coupon released", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(cancelSQL).WithArgs("o1").
				WillReturnRows(sqlmock.NewRows([]string{"license_id", "coupon_id"}).AddRow("lic-1", "c1"))
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE licenses SET status = 'AVAILABLE', order_id = NULL`)).
				WithArgs("lic-1").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE coupons SET use_count = GREATEST(use_count - 1, 0)`)).
				WithArgs("c1").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			require.NoError(t, repo.CancelOrder(ctx, "o1"))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not pending", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(cancelSQL).WithArgs("o1").
				WillReturnRows(sqlmock.NewRows([]string{"license_id", "coupon_id"}))
			mock.ExpectRollback()

			assert.ErrorIs(t, repo.CancelOrder(ctx, "o1"), repository.ErrInvalidTransition)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Release failure rolls back", func(t *testing.T) {
			dbErr := errors.New("deadlock detected")

			mock.ExpectBegin()
			mock.ExpectQuery(cancelSQL).WithArgs("o1").
				WillReturnRows(sqlmock.NewRows([]string{"license_id", "coupon_id"}).AddRow("lic-1", nil))
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE licenses SET status = 'AVAILABLE'`)).
				WithArgs("lic-1").
				WillReturnError(dbErr)
			mock.ExpectRollback()

			assert.ErrorIs(t, repo.CancelOrder(ctx, "o1"), dbErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListOrders", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM orders`)).
			WithArgs(models.OrderStatus("")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`)).
			WithArgs(models.OrderStatus(""), 20, 0).
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "p1", "buyer@example.com", "100", "90", nil, "lic-1", "PENDING", nil, now, now, "AAAA-BBBB"))

		orders, total, err := repo.ListOrders(ctx, "", 1, 20)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, orders, 1)
		assert.Nil(t, orders[0].CouponID)
		assert.Nil(t, orders[0].PaymentIntentID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
