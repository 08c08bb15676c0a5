package handlers

import (
	"log/slog"
	"net/http"

	"github.com/geekfaka/storefront/internal/api/middleware"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils"
	"github.com/geekfaka/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog godoc
//
//	@Summary		Storefront catalog
//	@Description	Categories by priority, each with its active products, stock and current price.
//	@Tags			Store
//	@Produce		json
//	@Success		200	{array}		models.CatalogCategory	"Catalog"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/store/catalog [get]
func (h *CatalogHandler) GetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		catalog, err := h.catalogService.GetCatalog(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load catalog", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, catalog)
	}
}

// GetProduct godoc
//
//	@Summary	Storefront view of one product
//	@Tags		Store
//	@Produce	json
//	@Param		id	path		string					true	"Product ID"
//	@Success	200	{object}	models.CatalogProduct	"Product"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found or inactive"
//	@Router		/store/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
