package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/lib/pq"
)

type DiscountRepository interface {
	ListDiscounts(ctx context.Context) ([]*models.Discount, error)
	GetDiscountByID(ctx context.Context, id string) (*models.Discount, error)
	// GetDiscountForProduct returns (nil, nil) when the product has no discount.
	GetDiscountForProduct(ctx context.Context, productID string) (*models.Discount, error)
	CreateDiscount(ctx context.Context, discount *models.Discount, productIDs []string) error
	// UpdateDiscount replaces membership wholesale when productIDs is non-nil.
	UpdateDiscount(ctx context.Context, discount *models.Discount, productIDs *[]string) error
	DeleteDiscount(ctx context.Context, id string) error
}

type discountRepository struct {
	DB *sql.DB
}

func NewDiscountRepo(db *sql.DB) DiscountRepository {
	return &discountRepository{DB: db}
}

const discountColumns = `d.id, d.name, d.type, d.value, d.start_date, d.end_date, d.is_active, d.created_at, d.updated_at`

func discountFields(d *models.Discount) []any {
	return []any{&d.ID, &d.Name, &d.Type, &d.Value, &d.StartDate, &d.EndDate, &d.IsActive, &d.CreatedAt, &d.UpdatedAt}
}

func (r *discountRepository) ListDiscounts(ctx context.Context) ([]*models.Discount, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + discountColumns + `,
			(SELECT COUNT(*) FROM products p WHERE p.discount_id = d.id)
		FROM discounts d
		ORDER BY d.created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	discounts := []*models.Discount{}

	for rows.Next() {
		discount := &models.Discount{}

		if err := rows.Scan(append(discountFields(discount), &discount.ProductCount)...); err != nil {
			return nil, err
		}

		discounts = append(discounts, discount)
	}

	return discounts, rows.Err()
}

func (r *discountRepository) GetDiscountByID(ctx context.Context, id string) (*models.Discount, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	discount := &models.Discount{}

	query := `SELECT ` + discountColumns + ` FROM discounts d WHERE d.id = $1`

	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(discountFields(discount)...); err != nil {
		return nil, mapError(err)
	}

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id FROM products WHERE discount_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	discount.ProductIDs = []string{}

	for rows.Next() {
		var productID string

		if err := rows.Scan(&productID); err != nil {
			return nil, err
		}

		discount.ProductIDs = append(discount.ProductIDs, productID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	discount.ProductCount = len(discount.ProductIDs)

	return discount, nil
}

func (r *discountRepository) GetDiscountForProduct(ctx context.Context, productID string) (*models.Discount, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	discount := &models.Discount{}

	query := `SELECT ` + discountColumns + ` FROM discounts d JOIN products p ON p.discount_id = d.id WHERE p.id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, productID).Scan(discountFields(discount)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return discount, nil
}

func (r *discountRepository) CreateDiscount(ctx context.Context, discount *models.Discount, productIDs []string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		query := `
			INSERT INTO discounts (name, type, value, start_date, end_date, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRowContext(dbCtx, query, discount.Name, discount.Type, discount.Value,
			discount.StartDate, discount.EndDate, discount.IsActive).
			Scan(&discount.ID, &discount.CreatedAt, &discount.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert discount: %w", mapError(err))
		}

		if err := assignProducts(dbCtx, tx, discount.ID, productIDs); err != nil {
			return err
		}

		discount.ProductIDs = productIDs
		discount.ProductCount = len(productIDs)

		return nil
	})
}

func (r *discountRepository) UpdateDiscount(ctx context.Context, discount *models.Discount, productIDs *[]string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		query := `
			UPDATE discounts SET name = $1, type = $2, value = $3, start_date = $4, end_date = $5,
				is_active = $6, updated_at = NOW()
			WHERE id = $7
			RETURNING updated_at`

		err := tx.QueryRowContext(dbCtx, query, discount.Name, discount.Type, discount.Value,
			discount.StartDate, discount.EndDate, discount.IsActive, discount.ID).Scan(&discount.UpdatedAt)
		if err != nil {
			return mapError(err)
		}

		if productIDs == nil {
			return nil
		}

		if err := clearProducts(dbCtx, tx, discount.ID); err != nil {
			return err
		}

		if err := assignProducts(dbCtx, tx, discount.ID, *productIDs); err != nil {
			return err
		}

		discount.ProductIDs = *productIDs
		discount.ProductCount = len(*productIDs)

		return nil
	})
}

// DeleteDiscount clears product references in the same transaction as the
// delete instead of relying on the foreign key action alone.
func (r *discountRepository) DeleteDiscount(ctx context.Context, id string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		if err := clearProducts(dbCtx, tx, id); err != nil {
			return err
		}

		res, err := tx.ExecContext(dbCtx, `DELETE FROM discounts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete discount: %w", err)
		}

		return expectAffected(res)
	})
}

func clearProducts(ctx context.Context, q dbtx, discountID string) error {
	_, err := q.ExecContext(ctx, `UPDATE products SET discount_id = NULL, updated_at = NOW() WHERE discount_id = $1`, discountID)
	if err != nil {
		return fmt.Errorf("clear discount products: %w", err)
	}

	return nil
}

// assignProducts moves productIDs under discountID, taking them away from any
// other discount. productIDs must already be de-duplicated.
func assignProducts(ctx context.Context, q dbtx, discountID string, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}

	res, err := q.ExecContext(ctx, `UPDATE products SET discount_id = $1, updated_at = NOW() WHERE id = ANY($2)`,
		discountID, pq.Array(productIDs))
	if err != nil {
		return fmt.Errorf("assign discount products: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if int(n) != len(productIDs) {
		return ErrUnknownProducts
	}

	return nil
}
