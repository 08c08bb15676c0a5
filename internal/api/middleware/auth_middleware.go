package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	"github.com/geekfaka/storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type claimsContextKey struct{}

var UserContextKey = claimsContextKey{}

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// Authenticate only lets through requests bearing a valid, unexpired HS256
// token with the admin role. Every rejection is a plain 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Unauthorized"))
			return
		}

		// Token is of format : "Bearer <token>"
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")

		if !found || strings.TrimSpace(tokenString) == "" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Unauthorized"))
			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			logger.Warn("JWT validation failed", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Unauthorized"))
			return
		}

		if claims.Role != models.RoleAdmin {
			logger.Warn("Token without admin role", slog.String("username", claims.Username))
			response.Error(w, errors.UnauthorizedError("Unauthorized"))
			return
		}

		ctx := WithClaims(r.Context(), claims)

		requestScopedLogger := logger.With(slog.String("admin", claims.Username))
		ctx = WithLogger(ctx, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok
}

// WithClaims returns a copy of ctx carrying the authenticated admin's claims.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, UserContextKey, claims)
}
