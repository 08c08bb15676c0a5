package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) CreateArticle(ctx context.Context, article *models.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *ArticleRepository) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	args := m.Called(ctx, id)
	return get[*models.Article](args, 0), args.Error(1)
}

func (m *ArticleRepository) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	return get[*models.Article](args, 0), args.Error(1)
}

func (m *ArticleRepository) UpdateArticle(ctx context.Context, article *models.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *ArticleRepository) DeleteArticle(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ArticleRepository) ListArticles(ctx context.Context, publishedOnly bool, page, size int) ([]*models.Article, int, error) {
	args := m.Called(ctx, publishedOnly, page, size)
	return get[[]*models.Article](args, 0), args.Int(1), args.Error(2)
}
