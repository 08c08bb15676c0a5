package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/geekfaka/storefront/internal/api/middleware"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	repository "github.com/geekfaka/storefront/internal/repositories"
)

// storeError maps repository sentinels for entity to client errors; anything
// else is logged and reported as a generic database error.
func storeError(ctx context.Context, err error, entity string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError(entity + " not found").WithError(err)
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.DuplicateEntryError(entity + " already exists").WithError(err)
	case errors.Is(err, repository.ErrReferenced):
		return appErrors.BadRequestError(entity + " refers to a missing record or is still in use").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Error("Database operation failed",
		slog.String("entity", entity), slog.String("error", err.Error()))

	return appErrors.DatabaseError("Failed to process " + strings.ToLower(entity)).WithError(err)
}

// blankToNil treats "" as clearing an optional reference.
func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
