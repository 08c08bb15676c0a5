package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCategoryRepo(db)
	ctx := t.Context()
	now := time.Now()

	columns := []string{"id", "name", "priority", "created_at", "updated_at"}

	t.Run("CreateCategory", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			category := &models.Category{Name: "Software", Priority: 10}

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories (name, priority) VALUES ($1, $2) RETURNING id, created_at, updated_at`)).
				WithArgs("Software", 10).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("cat-1", now, now))

			// Act
			err := repo.CreateCategory(ctx, category)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "cat-1", category.ID)
			assert.WithinDuration(t, now, category.CreatedAt, time.Second)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Duplicate", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).
				WithArgs("Software", 0).
				WillReturnError(&pq.Error{Code: "23505"})

			err := repo.CreateCategory(ctx, &models.Category{Name: "Software"})

			require.Error(t, err)
			assert.ErrorIs(t, err, repository.ErrDuplicate)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetCategoryByID", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT id, name, priority, created_at, updated_at FROM categories WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			mock.ExpectQuery(query).WithArgs("cat-1").
				WillReturnRows(sqlmock.NewRows(columns).AddRow("cat-1", "Software", 10, now, now))

			category, err := repo.GetCategoryByID(ctx, "cat-1")

			require.NoError(t, err)
			assert.Equal(t, "Software", category.Name)
			assert.Equal(t, 10, category.Priority)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			mock.ExpectQuery(query).WithArgs("missing").WillReturnRows(sqlmock.NewRows(columns))

			category, err := repo.GetCategoryByID(ctx, "missing")

			require.Error(t, err)
			assert.Nil(t, category)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateCategory", func(t *testing.T) {
		category := &models.Category{ID: "cat-1", Name: "Games", Priority: 3}

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE categories SET name = $1, priority = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`)).
			WithArgs("Games", 3, "cat-1").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		err := repo.UpdateCategory(ctx, category)

		require.NoError(t, err)
		assert.WithinDuration(t, now, category.UpdatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteCategory", func(t *testing.T) {
		query := regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			mock.ExpectExec(query).WithArgs("cat-1").WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.DeleteCategory(ctx, "cat-1"))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			mock.ExpectExec(query).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.DeleteCategory(ctx, "missing")

			assert.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListCategories", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM categories ORDER BY priority DESC, name`)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("cat-1", "Software", 10, now, now).
				AddRow("cat-2", "Games", 1, now, now))

		categories, err := repo.ListCategories(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "cat-1", categories[0].ID)
		assert.Equal(t, "cat-2", categories[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
