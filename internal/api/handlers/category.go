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

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: utils.NewValidator()}
}

// ListCategories godoc
//
//	@Summary	List categories by priority
//	@Tags		Admin Categories
//	@Produce	json
//	@Success	200	{array}		models.Category			"Categories"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Security	BearerAuth
//	@Router		/admin/categories [get]
func (h *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list categories", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// GetCategory godoc
//
//	@Summary	Get a category
//	@Tags		Admin Categories
//	@Produce	json
//	@Param		id	path		string					true	"Category ID"
//	@Success	200	{object}	models.Category			"Category"
//	@Failure	404	{object}	response.ErrorResponse	"Category not found"
//	@Security	BearerAuth
//	@Router		/admin/categories/{id} [get]
func (h *CategoryHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		category, err := h.categoryService.GetCategory(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// CreateCategory godoc
//
//	@Summary	Create a category
//	@Tags		Admin Categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		models.CreateCategoryRequest	true	"Category details"
//	@Success	201			{object}	models.Category					"Category created"
//	@Failure	400			{object}	response.ErrorResponse			"Validation error"
//	@Failure	409			{object}	response.ErrorResponse			"Name already exists"
//	@Security	BearerAuth
//	@Router		/admin/categories [post]
func (h *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Category created", slog.String("categoryId", category.ID))
		response.Success(w, http.StatusCreated, category)
	}
}

// UpdateCategory godoc
//
//	@Summary	Update a category
//	@Tags		Admin Categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string							true	"Category ID"
//	@Param		category	body		models.UpdateCategoryRequest	true	"Fields to change"
//	@Success	200			{object}	models.Category					"Category updated"
//	@Failure	400			{object}	response.ErrorResponse			"Validation error"
//	@Failure	404			{object}	response.ErrorResponse			"Category not found"
//	@Security	BearerAuth
//	@Router		/admin/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//
//	@Summary	Delete a category
//	@Tags		Admin Categories
//	@Produce	json
//	@Param		id	path		string						true	"Category ID"
//	@Success	200	{object}	response.SuccessResponse	"Deleted"
//	@Failure	404	{object}	response.ErrorResponse		"Category not found"
//	@Security	BearerAuth
//	@Router		/admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Category deleted", slog.String("categoryId", id))
		response.Success(w, http.StatusOK, response.SuccessResponse{Success: true})
	}
}
