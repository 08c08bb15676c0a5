package handlers

import (
	"log/slog"
	"net/http"

	"github.com/geekfaka/storefront/internal/api/middleware"
	models "github.com/geekfaka/storefront/internal/models"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils"
	"github.com/geekfaka/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: utils.NewValidator()}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	New products are active and accept coupons unless told otherwise.
//	@Tags			Admin Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product				"Product created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or unknown category"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary	Get a product
//	@Tags		Admin Products
//	@Produce	json
//	@Param		id	path		string					true	"Product ID"
//	@Success	200	{object}	models.Product			"Product"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/admin/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Only supplied fields change. An empty categoryId removes the category.
//	@Tags			Admin Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Product updated"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [patch]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Error during product update", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.String("productId", product.ID))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary	Delete a product
//	@Tags		Admin Products
//	@Produce	json
//	@Param		id	path		string						true	"Product ID"
//	@Success	200	{object}	response.SuccessResponse	"Deleted"
//	@Failure	400	{object}	response.ErrorResponse		"Product has orders"
//	@Failure	404	{object}	response.ErrorResponse		"Product not found"
//	@Security	BearerAuth
//	@Router		/admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, response.SuccessResponse{Success: true})
	}
}

// for eg: GET /admin/products?page=1&pageSize=10
//
// ListProducts godoc
//
//	@Summary	List products
//	@Tags		Admin Products
//	@Produce	json
//	@Param		page		query		int												false	"Page number (default: 1)"				minimum(1)
//	@Param		pageSize	query		int												false	"Items per page (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Products"
//	@Failure	401			{object}	response.ErrorResponse							"Authentication required"
//	@Security	BearerAuth
//	@Router		/admin/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := utils.ParsePagination(r)

		products, total, err := h.productService.ListProducts(r.Context(), page, pageSize)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
