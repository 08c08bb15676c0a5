package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geekfaka/storefront/internal/api"
	"github.com/geekfaka/storefront/internal/api/handlers"
	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/models"
	"github.com/geekfaka/storefront/internal/services/mocks"
	"github.com/geekfaka/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var routerKey = []byte("router-test-key-123456789012345")

type routerFixture struct {
	handler  http.Handler
	discount *mocks.DiscountService
	setting  *mocks.SettingService
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		discount: new(mocks.DiscountService),
		setting:  new(mocks.SettingService),
	}

	orders := new(mocks.OrderService)

	f.handler = api.NewRouter(api.Handlers{
		Coupon:   handlers.NewCouponHandler(new(mocks.CouponService)),
		Discount: handlers.NewDiscountHandler(f.discount),
		Category: handlers.NewCategoryHandler(new(mocks.CategoryService)),
		Product:  handlers.NewProductHandler(new(mocks.ProductService)),
		Catalog:  handlers.NewCatalogHandler(new(mocks.CatalogService)),
		License:  handlers.NewLicenseHandler(new(mocks.LicenseService)),
		Order:    handlers.NewOrderHandler(orders),
		Payment:  handlers.NewPaymentHandler(orders),
		Article:  handlers.NewArticleHandler(new(mocks.ArticleService)),
		Setting:  handlers.NewSettingHandler(f.setting),
		Auth:     handlers.NewAuthHandler(new(mocks.AuthService)),
	}, middleware.NewAuthMiddleware(routerKey), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	return f
}

func adminToken(t *testing.T) string {
	return testutils.AdminBearer(t, routerKey)
}

func TestRouter(t *testing.T) {
	t.Run("Admin routes need a token", func(t *testing.T) {
		f := newRouterFixture()

		for _, target := range []string{"/api/v1/admin/discounts", "/api/v1/admin/orders", "/api/v1/admin/settings"} {
			rr := httptest.NewRecorder()
			f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
		}

		f.discount.AssertNotCalled(t, "ListDiscounts", mock.Anything)
	})

	t.Run("Admin routes accept an admin token", func(t *testing.T) {
		f := newRouterFixture()
		f.discount.On("ListDiscounts", mock.Anything).Return([]*models.Discount{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/discounts", nil)
		req.Header.Set("Authorization", adminToken(t))
		rr := httptest.NewRecorder()
		f.handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.discount.AssertExpectations(t)
	})

	t.Run("Public routes are open", func(t *testing.T) {
		f := newRouterFixture()
		f.setting.On("GetBaseConfig", mock.Anything).Return(&models.BaseConfigResponse{SiteTitle: "GeekFaka"}).Once()

		rr := httptest.NewRecorder()
		f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/config/base", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Operational endpoints", func(t *testing.T) {
		f := newRouterFixture()

		for _, target := range []string{"/healthz", "/metrics"} {
			rr := httptest.NewRecorder()
			f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusOK, rr.Code, target)
		}
	})

	t.Run("Wrong method is rejected", func(t *testing.T) {
		f := newRouterFixture()

		rr := httptest.NewRecorder()
		f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/coupons/validate", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
