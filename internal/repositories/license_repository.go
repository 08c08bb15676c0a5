package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/lib/pq"
)

type LicenseRepository interface {
	// ImportLicenses inserts keys for a product, skipping keys the product
	// already has, and returns how many rows were inserted.
	ImportLicenses(ctx context.Context, productID string, keys []string) (int, error)
	ListLicenses(ctx context.Context, productID string, status models.LicenseStatus, page, size int) ([]*models.License, int, error)
	CountAvailable(ctx context.Context, productID string) (int, error)
	// DeleteLicense removes an unsold, unreserved key.
	DeleteLicense(ctx context.Context, id string) error
}

type licenseRepository struct {
	DB *sql.DB
}

func NewLicenseRepo(db *sql.DB) LicenseRepository {
	return &licenseRepository{DB: db}
}

func (r *licenseRepository) ImportLicenses(ctx context.Context, productID string, keys []string) (int, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO licenses (product_id, key)
		SELECT $1, k FROM unnest($2::text[]) AS k
		ON CONFLICT (product_id, key) DO NOTHING`

	res, err := r.DB.ExecContext(dbCtx, query, productID, pq.Array(keys))
	if err != nil {
		return 0, mapError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// ListLicenses filters by status unless status is empty.
func (r *licenseRepository) ListLicenses(ctx context.Context, productID string, status models.LicenseStatus, page, size int) ([]*models.License, int, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM licenses WHERE product_id = $1 AND ($2::text = '' OR status = $2)`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, productID, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, product_id, key, status, order_id, created_at, updated_at
		FROM licenses
		WHERE product_id = $1 AND ($2::text = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.DB.QueryContext(dbCtx, query, productID, status, size, models.Offset(page, size))
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	licenses := []*models.License{}

	for rows.Next() {
		l := &models.License{}

		if err := rows.Scan(&l.ID, &l.ProductID, &l.Key, &l.Status, &l.OrderID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, 0, err
		}

		licenses = append(licenses, l)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return licenses, total, nil
}

func (r *licenseRepository) CountAvailable(ctx context.Context, productID string) (int, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM licenses WHERE product_id = $1 AND status = 'AVAILABLE'`, productID).
		Scan(&count)

	return count, err
}

func (r *licenseRepository) DeleteLicense(ctx context.Context, id string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM licenses WHERE id = $1 AND status = 'AVAILABLE'`, id)
	if err != nil {
		return mapError(err)
	}

	return expectAffected(res)
}

// reserveLicense locks one AVAILABLE key of the product. SKIP LOCKED lets
// concurrent checkouts of the same product pick different keys instead of
// queueing on the same row.
func reserveLicense(ctx context.Context, q dbtx, productID string) (string, error) {
	var id string

	err := q.QueryRowContext(ctx, `
		SELECT id FROM licenses
		WHERE product_id = $1 AND status = 'AVAILABLE'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED`, productID).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrOutOfStock
	}

	if err != nil {
		return "", fmt.Errorf("reserve license: %w", err)
	}

	return id, nil
}
