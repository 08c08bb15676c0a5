package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ArticleService struct {
	mock.Mock
}

func (m *ArticleService) CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {
	args := m.Called(ctx, req)
	return get[*models.Article](args, 0), args.Error(1)
}

func (m *ArticleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	args := m.Called(ctx, id)
	return get[*models.Article](args, 0), args.Error(1)
}

func (m *ArticleService) GetPublishedArticle(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	return get[*models.Article](args, 0), args.Error(1)
}

func (m *ArticleService) UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error) {
	args := m.Called(ctx, id, req)
	return get[*models.Article](args, 0), args.Error(1)
}

func (m *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ArticleService) ListArticles(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*models.Article, int, error) {
	args := m.Called(ctx, publishedOnly, page, pageSize)
	return get[[]*models.Article](args, 0), args.Int(1), args.Error(2)
}
