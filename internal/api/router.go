package api

import (
	"net/http"

	_ "github.com/geekfaka/storefront/docs"
	"github.com/geekfaka/storefront/internal/api/handlers"
	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Handlers struct {
	Coupon   *handlers.CouponHandler
	Discount *handlers.DiscountHandler
	Category *handlers.CategoryHandler
	Product  *handlers.ProductHandler
	Catalog  *handlers.CatalogHandler
	License  *handlers.LicenseHandler
	Order    *handlers.OrderHandler
	Payment  *handlers.PaymentHandler
	Article  *handlers.ArticleHandler
	Setting  *handlers.SettingHandler
	Auth     *handlers.AuthHandler
}

// NewRouter registers every route. Requests pass through tracing, then the
// request logger, then metrics labelled by route pattern.
func NewRouter(h Handlers, auth *middleware.AuthMiddleware, healthHandler http.Handler) http.Handler {

	mux := http.NewServeMux()

	// Public storefront
	mux.HandleFunc("GET /api/v1/config/base", h.Setting.GetBaseConfig())
	mux.HandleFunc("GET /api/v1/store/settings", h.Setting.GetPublicSettings())
	mux.HandleFunc("GET /api/v1/store/catalog", h.Catalog.GetCatalog())
	mux.HandleFunc("GET /api/v1/store/products/{id}", h.Catalog.GetProduct())
	mux.HandleFunc("GET /api/v1/store/articles", h.Article.ListPublishedArticles())
	mux.HandleFunc("GET /api/v1/store/articles/{slug}", h.Article.GetPublishedArticle())
	mux.HandleFunc("POST /api/v1/coupons/validate", h.Coupon.ValidateCoupon())
	mux.HandleFunc("POST /api/v1/orders", h.Order.CreateOrder())
	mux.HandleFunc("GET /api/v1/orders/{id}", h.Order.GetOrder())
	mux.HandleFunc("POST /api/v1/payments/webhook", h.Payment.HandleStripeWebhook())
	mux.HandleFunc("POST /api/v1/admin/login", h.Auth.Login())

	// Admin
	admin := func(pattern string, handler http.HandlerFunc) {
		mux.HandleFunc(pattern, auth.Authenticate(handler))
	}

	admin("GET /api/v1/admin/discounts", h.Discount.ListDiscounts())
	admin("POST /api/v1/admin/discounts", h.Discount.CreateDiscount())
	admin("GET /api/v1/admin/discounts/{id}", h.Discount.GetDiscount())
	admin("PATCH /api/v1/admin/discounts/{id}", h.Discount.UpdateDiscount())
	admin("DELETE /api/v1/admin/discounts/{id}", h.Discount.DeleteDiscount())

	admin("GET /api/v1/admin/coupons", h.Coupon.ListCoupons())
	admin("POST /api/v1/admin/coupons", h.Coupon.CreateCoupon())
	admin("GET /api/v1/admin/coupons/{id}", h.Coupon.GetCoupon())
	admin("PATCH /api/v1/admin/coupons/{id}", h.Coupon.UpdateCoupon())
	admin("DELETE /api/v1/admin/coupons/{id}", h.Coupon.DeleteCoupon())

	admin("GET /api/v1/admin/categories", h.Category.ListCategories())
	admin("POST /api/v1/admin/categories", h.Category.CreateCategory())
	admin("GET /api/v1/admin/categories/{id}", h.Category.GetCategory())
	admin("PATCH /api/v1/admin/categories/{id}", h.Category.UpdateCategory())
	admin("DELETE /api/v1/admin/categories/{id}", h.Category.DeleteCategory())

	admin("GET /api/v1/admin/products", h.Product.ListProducts())
	admin("POST /api/v1/admin/products", h.Product.CreateProduct())
	admin("GET /api/v1/admin/products/{id}", h.Product.GetProduct())
	admin("PATCH /api/v1/admin/products/{id}", h.Product.UpdateProduct())
	admin("DELETE /api/v1/admin/products/{id}", h.Product.DeleteProduct())
	admin("GET /api/v1/admin/products/{id}/licenses", h.License.ListLicenses())
	admin("POST /api/v1/admin/products/{id}/licenses", h.License.ImportLicenses())
	admin("DELETE /api/v1/admin/licenses/{id}", h.License.DeleteLicense())

	admin("GET /api/v1/admin/orders", h.Order.ListOrders())
	admin("POST /api/v1/admin/orders/{id}/cancel", h.Order.CancelOrder())
	admin("POST /api/v1/admin/orders/{id}/deliver", h.Order.DeliverOrder())

	admin("GET /api/v1/admin/articles", h.Article.ListArticles())
	admin("POST /api/v1/admin/articles", h.Article.CreateArticle())
	admin("GET /api/v1/admin/articles/{id}", h.Article.GetArticle())
	admin("PATCH /api/v1/admin/articles/{id}", h.Article.UpdateArticle())
	admin("DELETE /api/v1/admin/articles/{id}", h.Article.DeleteArticle())

	admin("GET /api/v1/admin/settings", h.Setting.GetPublicSettings())
	admin("PUT /api/v1/admin/settings", h.Setting.UpdateSettings())

	// Operations
	if healthHandler != nil {
		mux.Handle("GET /healthz", healthHandler)
	}
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = metrics.Middleware(mux)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	return handler
}
