package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	// GetPublishedArticle serves the storefront; drafts are reported as missing.
	GetPublishedArticle(ctx context.Context, slug string) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
	ListArticles(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*models.Article, int, error)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type articleService struct {
	repo   repository.ArticleRepository
	cache  cache.Cache
	policy *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepository, c cache.Cache) ArticleService {
	return &articleService{
		repo:   repo,
		cache:  c,
		policy: bluemonday.UGCPolicy(),
	}
}

func (s *articleService) CreateArticle(ctx context.Context, req *models.CreateArticleRequest) (*models.Article, error) {

	article := &models.Article{
		Title:       strings.TrimSpace(req.Title),
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Content:     s.policy.Sanitize(req.Content),
		IsPublished: req.IsPublished,
	}

	if err := checkArticle(article); err != nil {
		return nil, err
	}

	if err := s.repo.CreateArticle(ctx, article); err != nil {
		return nil, storeError(ctx, err, "Article")
	}

	return article, nil
}

func (s *articleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {

	article, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Article")
	}

	return article, nil
}

func (s *articleService) GetPublishedArticle(ctx context.Context, slug string) (*models.Article, error) {

	logger := middleware.LoggerFromContext(ctx)
	slug = strings.ToLower(slug)

	article, _, err := cache.Remember(ctx, s.cache, logger, cache.Key(cache.ArticleKeyPrefix, slug), 0,
		func(ctx context.Context) (*models.Article, error) {
			return s.repo.GetArticleBySlug(ctx, slug)
		})
	if err != nil {
		return nil, storeError(ctx, err, "Article")
	}

	if !article.IsPublished {
		return nil, appErrors.NotFoundError("Article not found")
	}

	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, id string, req *models.UpdateArticleRequest) (*models.Article, error) {

	article, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Article")
	}

	oldSlug := article.Slug

	if req.Title != nil {
		article.Title = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil {
		article.Slug = strings.ToLower(strings.TrimSpace(*req.Slug))
	}
	if req.Content != nil {
		article.Content = s.policy.Sanitize(*req.Content)
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}

	if err := checkArticle(article); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateArticle(ctx, article); err != nil {
		return nil, storeError(ctx, err, "Article")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx),
		cache.Key(cache.ArticleKeyPrefix, oldSlug), cache.Key(cache.ArticleKeyPrefix, article.Slug))

	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id string) error {

	article, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return storeError(ctx, err, "Article")
	}

	if err := s.repo.DeleteArticle(ctx, id); err != nil {
		return storeError(ctx, err, "Article")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.Key(cache.ArticleKeyPrefix, article.Slug))

	return nil
}

func (s *articleService) ListArticles(ctx context.Context, publishedOnly bool, page, pageSize int) ([]*models.Article, int, error) {

	articles, total, err := s.repo.ListArticles(ctx, publishedOnly, page, pageSize)
	if err != nil {
		return nil, 0, storeError(ctx, err, "Article")
	}

	return articles, total, nil
}

func checkArticle(a *models.Article) error {
	if a.Title == "" {
		return appErrors.AddValidationError("title", "must not be blank")
	}

	if !slugPattern.MatchString(a.Slug) {
		return appErrors.AddValidationError("slug", "use lowercase letters, digits and single hyphens")
	}

	if strings.TrimSpace(a.Content) == "" {
		return appErrors.AddValidationError("content", "is empty after removing unsafe markup")
	}

	return nil
}
