package handlers

import (
	"log/slog"
	"net/http"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/models"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils"
	"github.com/geekfaka/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ArticleHandler struct {
	articleService service.ArticleService
	validator      *validator.Validate
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, validator: utils.NewValidator()}
}

// ListPublishedArticles godoc
//
//	@Summary	List published articles
//	@Tags		Store
//	@Produce	json
//	@Param		page		query		int												false	"Page number (default: 1)"
//	@Param		pageSize	query		int												false	"Items per page (default: 20, max: 100)"
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.Article}	"Articles"
//	@Router		/store/articles [get]
func (h *ArticleHandler) ListPublishedArticles() http.HandlerFunc {
	return h.list(true)
}

// ListArticles godoc
//
//	@Summary	List all articles, drafts included
//	@Tags		Admin Articles
//	@Produce	json
//	@Param		page		query		int												false	"Page number (default: 1)"
//	@Param		pageSize	query		int												false	"Items per page (default: 20, max: 100)"
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.Article}	"Articles"
//	@Failure	401			{object}	response.ErrorResponse							"Authentication required"
//	@Security	BearerAuth
//	@Router		/admin/articles [get]
func (h *ArticleHandler) ListArticles() http.HandlerFunc {
	return h.list(false)
}

func (h *ArticleHandler) list(publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := utils.ParsePagination(r)

		articles, total, err := h.articleService.ListArticles(r.Context(), publishedOnly, page, pageSize)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list articles", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     articles,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// GetPublishedArticle godoc
//
//	@Summary	Get a published article by slug
//	@Tags		Store
//	@Produce	json
//	@Param		slug	path		string					true	"Article slug"
//	@Success	200		{object}	models.Article			"Article"
//	@Failure	404		{object}	response.ErrorResponse	"Article not found"
//	@Router		/store/articles/{slug} [get]
func (h *ArticleHandler) GetPublishedArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug, err := utils.PathID(r, "slug")
		if err != nil {
			response.Error(w, err)
			return
		}

		article, err := h.articleService.GetPublishedArticle(r.Context(), slug)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, article)
	}
}

// GetArticle godoc
//
//	@Summary	Get an article
//	@Tags		Admin Articles
//	@Produce	json
//	@Param		id	path		string					true	"Article ID"
//	@Success	200	{object}	models.Article			"Article"
//	@Failure	404	{object}	response.ErrorResponse	"Article not found"
//	@Security	BearerAuth
//	@Router		/admin/articles/{id} [get]
func (h *ArticleHandler) GetArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		article, err := h.articleService.GetArticle(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, article)
	}
}

// CreateArticle godoc
//
//	@Summary		Create an article
//	@Description	Content is sanitized. Slugs are lowercase words joined by single hyphens.
//	@Tags			Admin Articles
//	@Accept			json
//	@Produce		json
//	@Param			article	body		models.CreateArticleRequest	true	"Article"
//	@Success		201		{object}	models.Article				"Article created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		409		{object}	response.ErrorResponse		"Slug already exists"
//	@Security		BearerAuth
//	@Router			/admin/articles [post]
func (h *ArticleHandler) CreateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateArticleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		article, err := h.articleService.CreateArticle(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create article", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Article created", slog.String("articleId", article.ID), slog.String("slug", article.Slug))
		response.Success(w, http.StatusCreated, article)
	}
}

// UpdateArticle godoc
//
//	@Summary	Update an article
//	@Tags		Admin Articles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Article ID"
//	@Param		article	body		models.UpdateArticleRequest	true	"Fields to change"
//	@Success	200		{object}	models.Article				"Article updated"
//	@Failure	400		{object}	response.ErrorResponse		"Validation error"
//	@Failure	404		{object}	response.ErrorResponse		"Article not found"
//	@Failure	409		{object}	response.ErrorResponse		"Slug already exists"
//	@Security	BearerAuth
//	@Router		/admin/articles/{id} [patch]
func (h *ArticleHandler) UpdateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateArticleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		article, err := h.articleService.UpdateArticle(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, article)
	}
}

// DeleteArticle godoc
//
//	@Summary	Delete an article
//	@Tags		Admin Articles
//	@Produce	json
//	@Param		id	path		string						true	"Article ID"
//	@Success	200	{object}	response.SuccessResponse	"Deleted"
//	@Failure	404	{object}	response.ErrorResponse		"Article not found"
//	@Security	BearerAuth
//	@Router		/admin/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.articleService.DeleteArticle(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, response.SuccessResponse{Success: true})
	}
}
