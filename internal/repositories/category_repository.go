package repository

import (
	"context"
	"database/sql"

	"github.com/geekfaka/storefront/internal/models"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `INSERT INTO categories (name, priority) VALUES ($1, $2) RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.Name, category.Priority).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)

	return mapError(err)
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	category := &models.Category{}

	query := `SELECT id, name, priority, created_at, updated_at FROM categories WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&category.ID, &category.Name, &category.Priority, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	return category, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `UPDATE categories SET name = $1, priority = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.Name, category.Priority, category.ID).Scan(&category.UpdatedAt)

	return mapError(err)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	return expectAffected(res)
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, priority, created_at, updated_at FROM categories ORDER BY priority DESC, name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	categories := []*models.Category{}

	for rows.Next() {
		category := &models.Category{}

		if err := rows.Scan(&category.ID, &category.Name, &category.Priority, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	return categories, rows.Err()
}
