package repository

import (
	"context"
	"database/sql"

	"github.com/geekfaka/storefront/internal/models"
)

type ArticleRepository interface {
	CreateArticle(ctx context.Context, article *models.Article) error
	GetArticleByID(ctx context.Context, id string) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	UpdateArticle(ctx context.Context, article *models.Article) error
	DeleteArticle(ctx context.Context, id string) error
	ListArticles(ctx context.Context, publishedOnly bool, page, size int) ([]*models.Article, int, error)
}

type articleRepository struct {
	DB *sql.DB
}

func NewArticleRepo(db *sql.DB) ArticleRepository {
	return &articleRepository{DB: db}
}

const articleColumns = `id, title, slug, content, is_published, created_at, updated_at`

func scanArticle(row rowScanner) (*models.Article, error) {
	a := &models.Article{}

	if err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.IsPublished, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	return a, nil
}

func (r *articleRepository) CreateArticle(ctx context.Context, article *models.Article) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `INSERT INTO articles (title, slug, content, is_published) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, article.Title, article.Slug, article.Content, article.IsPublished).
		Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)

	return mapError(err)
}

func (r *articleRepository) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	article, err := scanArticle(r.DB.QueryRowContext(dbCtx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}

	return article, nil
}

func (r *articleRepository) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	article, err := scanArticle(r.DB.QueryRowContext(dbCtx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug))
	if err != nil {
		return nil, mapError(err)
	}

	return article, nil
}

func (r *articleRepository) UpdateArticle(ctx context.Context, article *models.Article) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `
		UPDATE articles SET title = $1, slug = $2, content = $3, is_published = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, article.Title, article.Slug, article.Content, article.IsPublished, article.ID).
		Scan(&article.UpdatedAt)

	return mapError(err)
}

func (r *articleRepository) DeleteArticle(ctx context.Context, id string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectAffected(res)
}

func (r *articleRepository) ListArticles(ctx context.Context, publishedOnly bool, page, size int) ([]*models.Article, int, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM articles WHERE (NOT $1 OR is_published)`, publishedOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+articleColumns+` FROM articles WHERE (NOT $1 OR is_published) ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		publishedOnly, size, models.Offset(page, size))
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	articles := []*models.Article{}

	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}

		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}
