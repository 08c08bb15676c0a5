package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/config"
	"github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	limiter repository.RateLimitRepository
	cfg     *config.Security
}

func NewAuthService(limiter repository.RateLimitRepository, cfg *config.Security) AuthService {
	return &authService{limiter: limiter, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	// check rate limit
	allowed, remaining, retryAfter, err := s.limiter.CheckLoginRateLimit(ctx, req.Username)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		logger.Warn("Admin login rate limited", slog.String("username", req.Username), slog.Int("retry_after", retryAfter))
		return nil, errors.TooManyRequestsError("Too many login attempts. Please try again later.").WithRetryAfter(retryAfter)
	}

	if !s.credentialsMatch(req) {
		logger.Warn("Admin login failed", slog.String("username", req.Username), slog.Int("remaining_tries", remaining))
		return nil, errors.UnauthorizedError("Invalid username or password")
	}

	if err := s.limiter.ResetLoginAttempts(ctx, req.Username); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	expiresIn := time.Duration(s.cfg.JWTExpiryHours) * time.Hour
	now := time.Now()

	claims := &models.Claims{
		Username: req.Username,
		Role:     models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTKey))
	if err != nil {
		return nil, errors.InternalError("Failed to generate token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     tokenString,
		TokenType: "Bearer",
		ExpiresIn: int(expiresIn.Seconds()),
	}, nil
}

// credentialsMatch always runs bcrypt so a wrong username costs the same as a wrong password.
func (s *authService) credentialsMatch(req *models.LoginRequest) bool {
	if s.cfg.AdminPasswordHash == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)) == nil

	return userOK && passOK
}
