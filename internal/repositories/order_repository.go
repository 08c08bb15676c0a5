package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/geekfaka/storefront/internal/models"
)

type OrderRepository interface {
	// Checkout reserves a license, redeems the coupon (if any) and inserts
	// the order, all in one transaction.
	Checkout(ctx context.Context, order *models.Order) error
	SetPaymentIntent(ctx context.Context, orderID, paymentIntentID string) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error)
	// MarkPaid moves a PENDING order to PAID and its license to SOLD.
	MarkPaid(ctx context.Context, orderID string) error
	MarkDelivered(ctx context.Context, orderID string) error
	// CancelOrder moves a PENDING order to CANCELLED, returning its license
	// to stock and its coupon use.
	CancelOrder(ctx context.Context, orderID string) error
	ListOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]*models.Order, int, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderSelect = `
	SELECT o.id, o.product_id, o.email, o.original_price, o.final_price, o.coupon_id, o.license_id,
		o.status, o.payment_intent_id, o.created_at, o.updated_at, COALESCE(l.key, '')
	FROM orders o
	LEFT JOIN licenses l ON l.id = o.license_id`

func scanOrder(row rowScanner) (*models.Order, error) {
	o := &models.Order{}

	err := row.Scan(&o.ID, &o.ProductID, &o.Email, &o.OriginalPrice, &o.FinalPrice, &o.CouponID, &o.LicenseID,
		&o.Status, &o.PaymentIntentID, &o.CreatedAt, &o.UpdatedAt, &o.LicenseKey)
	if err != nil {
		return nil, err
	}

	return o, nil
}

func (r *orderRepository) Checkout(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		licenseID, err := reserveLicense(dbCtx, tx, order.ProductID)
		if err != nil {
			return err
		}

		if order.CouponID != nil {
			if err := redeemCoupon(dbCtx, tx, *order.CouponID); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO orders (product_id, email, original_price, final_price, coupon_id, license_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`

		err = tx.QueryRowContext(dbCtx, query, order.ProductID, order.Email, order.OriginalPrice, order.FinalPrice,
			order.CouponID, licenseID, order.Status).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert order: %w", mapError(err))
		}

		_, err = tx.ExecContext(dbCtx, `UPDATE licenses SET status = 'RESERVED', order_id = $1, updated_at = NOW() WHERE id = $2`,
			order.ID, licenseID)
		if err != nil {
			return fmt.Errorf("mark license reserved: %w", err)
		}

		order.LicenseID = &licenseID

		return nil
	})
}

func (r *orderRepository) SetPaymentIntent(ctx context.Context, orderID, paymentIntentID string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET payment_intent_id = $1, updated_at = NOW() WHERE id = $2`,
		paymentIntentID, orderID)
	if err != nil {
		return mapError(err)
	}

	return expectAffected(res)
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}

	return order, nil
}

func (r *orderRepository) GetOrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, orderSelect+` WHERE o.payment_intent_id = $1`, paymentIntentID))
	if err != nil {
		return nil, mapError(err)
	}

	return order, nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, orderID string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		var licenseID sql.NullString

		err := tx.QueryRowContext(dbCtx, `
			UPDATE orders SET status = 'PAID', updated_at = NOW()
			WHERE id = $1 AND status = 'PENDING'
			RETURNING license_id`, orderID).Scan(&licenseID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidTransition
		}

		if err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}

		if !licenseID.Valid {
			return nil
		}

		_, err = tx.ExecContext(dbCtx, `UPDATE licenses SET status = 'SOLD', updated_at = NOW() WHERE id = $1`, licenseID.String)
		if err != nil {
			return fmt.Errorf("mark license sold: %w", err)
		}

		return nil
	})
}

func (r *orderRepository) MarkDelivered(ctx context.Context, orderID string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET status = 'DELIVERED', updated_at = NOW() WHERE id = $1 AND status = 'PAID'`,
		orderID)
	if err != nil {
		return err
	}

	if err := expectAffected(res); err != nil {
		return ErrInvalidTransition
	}

	return nil
}

func (r *orderRepository) CancelOrder(ctx context.Context, orderID string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		var licenseID, couponID sql.NullString

		err := tx.QueryRowContext(dbCtx, `
			UPDATE orders SET status = 'CANCELLED', updated_at = NOW()
			WHERE id = $1 AND status = 'PENDING'
			RETURNING license_id, coupon_id`, orderID).Scan(&licenseID, &couponID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidTransition
		}

		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		if licenseID.Valid {
			_, err := tx.ExecContext(dbCtx, `
				UPDATE licenses SET status = 'AVAILABLE', order_id = NULL, updated_at = NOW()
				WHERE id = $1 AND status = 'RESERVED'`, licenseID.String)
			if err != nil {
				return fmt.Errorf("release license: %w", err)
			}
		}

		if couponID.Valid {
			if err := releaseCoupon(dbCtx, tx, couponID.String); err != nil {
				return err
			}
		}

		return nil
	})
}

// ListOrders filters by status unless status is empty.
func (r *orderRepository) ListOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]*models.Order, int, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders WHERE ($1::text = '' OR status = $1)`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(dbCtx, orderSelect+` WHERE ($1::text = '' OR o.status = $1) ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`,
		status, size, models.Offset(page, size))
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	orders := []*models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
