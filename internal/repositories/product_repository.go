package repository

import (
	"context"
	"database/sql"

	"github.com/geekfaka/storefront/internal/models"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	// GetProductCategoryID returns the category of a product; a product
	// without a category yields (nil, nil).
	GetProductCategoryID(ctx context.Context, id string) (*string, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, description, price, is_active, category_id, discount_id, enable_coupons, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.IsActive,
		&product.CategoryID, &product.DiscountID, &product.EnableCoupons, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, description, price, is_active, category_id, enable_coupons)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.IsActive,
		product.CategoryID, product.EnableCoupons).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	return mapError(err)
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, mapError(err)
	}

	return product, nil
}

func (r *productRepository) GetProductCategoryID(ctx context.Context, id string) (*string, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var categoryID sql.NullString

	err := r.DB.QueryRowContext(dbCtx, `SELECT category_id FROM products WHERE id = $1`, id).Scan(&categoryID)
	if err != nil {
		return nil, mapError(err)
	}

	if !categoryID.Valid {
		return nil, nil
	}

	return &categoryID.String, nil
}

// UpdateProduct writes every mutable column; discount membership is owned by
// the discount repository and is left untouched.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, description = $2, price = $3, is_active = $4, category_id = $5,
			enable_coupons = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.IsActive,
		product.CategoryID, product.EnableCoupons, product.ID).Scan(&product.UpdatedAt)

	return mapError(err)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	return expectAffected(res)
}

func (r *productRepository) ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, models.Offset(page, size))
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
