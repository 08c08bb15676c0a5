package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/geekfaka/storefront/internal/models"
)

type CouponRepository interface {
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
	GetCouponByID(ctx context.Context, id string) (*models.Coupon, error)
	ListCoupons(ctx context.Context, page, size int) ([]*models.Coupon, int, error)
	CreateCoupon(ctx context.Context, coupon *models.Coupon) error
	UpdateCoupon(ctx context.Context, coupon *models.Coupon) error
	DeleteCoupon(ctx context.Context, id string) error
}

type couponRepository struct {
	DB *sql.DB
}

func NewCouponRepo(db *sql.DB) CouponRepository {
	return &couponRepository{DB: db}
}

const couponColumns = `id, code, discount_type, discount_value, valid_from, valid_until, is_reusable, is_used,
	use_count, product_id, category_id, created_at, updated_at`

func scanCoupon(row rowScanner) (*models.Coupon, error) {
	c := &models.Coupon{}

	err := row.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.ValidFrom, &c.ValidUntil,
		&c.IsReusable, &c.IsUsed, &c.UseCount, &c.ProductID, &c.CategoryID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// GetCouponByCode expects code in its normalized form.
func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	coupon, err := scanCoupon(r.DB.QueryRowContext(dbCtx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code))
	if err != nil {
		return nil, mapError(err)
	}

	return coupon, nil
}

func (r *couponRepository) GetCouponByID(ctx context.Context, id string) (*models.Coupon, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	coupon, err := scanCoupon(r.DB.QueryRowContext(dbCtx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}

	return coupon, nil
}

func (r *couponRepository) ListCoupons(ctx context.Context, page, size int) ([]*models.Coupon, int, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM coupons`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		size, models.Offset(page, size))
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	coupons := []*models.Coupon{}

	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, 0, err
		}

		coupons = append(coupons, coupon)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return coupons, total, nil
}

func (r *couponRepository) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO coupons (code, discount_type, discount_value, valid_from, valid_until, is_reusable, product_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, coupon.Code, coupon.DiscountType, coupon.DiscountValue, coupon.ValidFrom,
		coupon.ValidUntil, coupon.IsReusable, coupon.ProductID, coupon.CategoryID).
		Scan(&coupon.ID, &coupon.CreatedAt, &coupon.UpdatedAt)

	return mapError(err)
}

func (r *couponRepository) UpdateCoupon(ctx context.Context, coupon *models.Coupon) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		UPDATE coupons SET discount_type = $1, discount_value = $2, valid_from = $3, valid_until = $4,
			is_reusable = $5, is_used = $6, product_id = $7, category_id = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, coupon.DiscountType, coupon.DiscountValue, coupon.ValidFrom, coupon.ValidUntil,
		coupon.IsReusable, coupon.IsUsed, coupon.ProductID, coupon.CategoryID, coupon.ID).Scan(&coupon.UpdatedAt)

	return mapError(err)
}

func (r *couponRepository) DeleteCoupon(ctx context.Context, id string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	return expectAffected(res)
}

// redeemCoupon consumes one use of a coupon. The used-flag check and the
// write are a single statement, so two concurrent checkouts of a single-use
// coupon cannot both succeed.
func redeemCoupon(ctx context.Context, q dbtx, id string) error {
	res, err := q.ExecContext(ctx, `
		UPDATE coupons SET is_used = TRUE, use_count = use_count + 1, updated_at = NOW()
		WHERE id = $1 AND (is_reusable OR NOT is_used)`, id)
	if err != nil {
		return fmt.Errorf("redeem coupon: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrCouponAlreadyUsed
	}

	return nil
}

// releaseCoupon gives a use back after an unpaid order is cancelled.
func releaseCoupon(ctx context.Context, q dbtx, id string) error {
	_, err := q.ExecContext(ctx, `
		UPDATE coupons SET use_count = GREATEST(use_count - 1, 0),
			is_used = CASE WHEN is_reusable THEN is_used ELSE FALSE END,
			updated_at = NOW()
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("release coupon: %w", err)
	}

	return nil
}
